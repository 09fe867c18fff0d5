// Package company loads the company master: a static, read-only mapping from
// company name to its contact details, supplied as external configuration.
// The core never mutates it; payments snapshot entries at creation time.
package company

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/vendorpay/vpa_backend/internal/core/domain"
)

// DefaultKey is the fallback entry used by vendor-scoped payments when no
// company name is supplied.
const DefaultKey = "DEFAULT"

// Master maps company name to its master record.
type Master map[string]domain.Company

type masterFile struct {
	Companies []domain.Company `mapstructure:"companies"`
}

// Load reads the company master file (YAML or JSON, decided by extension).
// Entries are keyed by their name field; a list layout is used because viper
// lowercases map keys, and company names are case-sensitive.
func Load(path string) (Master, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read company master %s: %w", path, err)
	}

	var file masterFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse company master %s: %w", path, err)
	}

	master := make(Master, len(file.Companies))
	for _, c := range file.Companies {
		if c.Name == "" {
			return nil, fmt.Errorf("company master %s: entry with empty name", path)
		}
		master[c.Name] = c
	}
	return master, nil
}

// Resolve looks up a company by exact name.
func (m Master) Resolve(name string) (domain.Company, bool) {
	c, ok := m[name]
	return c, ok
}
