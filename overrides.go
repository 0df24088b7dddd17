package countries

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed overrides.yaml
var defaultOverridesYAML []byte

// ErrInvalidOverrides is returned for malformed override tables.
var ErrInvalidOverrides = errors.New("invalid currency overrides")

// Overrides is the versioned table of currency corrections applied by the
// Transformer, keyed by alpha-2 code. It exists because the upstream source
// is missing or stale for a handful of territories; it is not exhaustive.
type Overrides struct {
	Version    string                               `yaml:"version"`
	Currencies OrderedMap[OrderedMap[CurrencyInfo]] `yaml:"currencies"`
}

var defaultOverrides = sync.OnceValues(func() (*Overrides, error) {
	return ParseOverrides(defaultOverridesYAML)
})

// DefaultOverrides returns the override table shipped with the package.
func DefaultOverrides() (*Overrides, error) {
	return defaultOverrides()
}

// LoadOverrides reads an override table from a YAML file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overrides: %w", err)
	}
	return ParseOverrides(data)
}

// ParseOverrides parses and validates a YAML override table.
func ParseOverrides(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOverrides, err)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (o *Overrides) validate() error {
	if o.Version == "" {
		return fmt.Errorf("%w: missing version", ErrInvalidOverrides)
	}
	for cca2, currencies := range o.Currencies.All() {
		if len(cca2) != 2 || !isUpperASCII(cca2) {
			return fmt.Errorf("%w: %q is not an alpha-2 code", ErrInvalidOverrides, cca2)
		}
		if currencies.Len() == 0 {
			return fmt.Errorf("%w: %s has no currencies", ErrInvalidOverrides, cca2)
		}
		for code, info := range currencies.All() {
			if len(code) != 3 || !isUpperASCII(code) {
				return fmt.Errorf("%w: %s: %q is not a currency code", ErrInvalidOverrides, cca2, code)
			}
			if info.Name == "" || info.Symbol == "" {
				return fmt.Errorf("%w: %s: %s needs a name and a symbol", ErrInvalidOverrides, cca2, code)
			}
		}
	}
	return nil
}

// Lookup returns the override currencies for cca2.
func (o *Overrides) Lookup(cca2 string) (OrderedMap[CurrencyInfo], bool) {
	if o == nil {
		return OrderedMap[CurrencyInfo]{}, false
	}
	return o.Currencies.Get(cca2)
}

func isUpperASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
