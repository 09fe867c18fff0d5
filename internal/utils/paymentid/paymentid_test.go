package paymentid_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendorpay/vpa_backend/internal/utils/paymentid"
)

var idPattern = regexp.MustCompile(`^PV-[0-9]{6}-[0-9A-Z]{4}$`)

func TestNew_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := paymentid.New()
		assert.Regexp(t, idPattern, id)
	}
}

func TestNew_MostlyUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		seen[paymentid.New()] = struct{}{}
	}
	// Same-millisecond collisions are possible but the random suffix keeps
	// them rare; anything below this bound means the suffix is broken.
	assert.Greater(t, len(seen), 45)
}
