// Package paymentid generates the human-readable payment identifiers used in
// stored payment records: PV-<last 6 digits of epoch millis>-<4 uppercase
// alphanumeric chars>.
package paymentid

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

const suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// New returns a fresh payment identifier, e.g. "PV-847213-K3QF".
func New() string {
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixAlphabet))))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken;
			// fall back to a time-derived index rather than panic.
			suffix[i] = suffixAlphabet[time.Now().UnixNano()%int64(len(suffixAlphabet))]
			continue
		}
		suffix[i] = suffixAlphabet[n.Int64()]
	}

	return fmt.Sprintf("PV-%s-%s", millis, suffix)
}
