package company_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorpay/vpa_backend/internal/platform/company"
)

func writeMaster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "companies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_KeysByExactName(t *testing.T) {
	path := writeMaster(t, `
companies:
  - name: DEFAULT
    address: Mumbai
    phone: "022-5678"
    email: default@co.example
  - name: Shree Constructions
    address: Pune
    phone: "020-1234"
    email: accounts@shree.example
`)

	master, err := company.Load(path)
	require.NoError(t, err)
	require.Len(t, master, 2)

	// Company names are case-sensitive lookup keys.
	c, ok := master.Resolve("Shree Constructions")
	require.True(t, ok)
	assert.Equal(t, "Pune", c.Address)

	_, ok = master.Resolve("shree constructions")
	assert.False(t, ok)

	_, ok = master.Resolve(company.DefaultKey)
	assert.True(t, ok)
}

func TestLoad_RejectsEntryWithoutName(t *testing.T) {
	path := writeMaster(t, `
companies:
  - address: Nowhere
`)

	_, err := company.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := company.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
