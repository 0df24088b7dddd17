package countries

import (
	"errors"
	"fmt"
)

// ErrInvalidDataset is returned when records break the dataset invariants.
var ErrInvalidDataset = errors.New("invalid dataset")

// ValidationReport summarises a dataset that passed ValidateRecords.
type ValidationReport struct {
	Countries int
	// EmptyCurrencies lists, as "CC (Name)", the records without currencies.
	// This is allowed but worth auditing.
	EmptyCurrencies []string
}

// ValidateRecords checks the invariants every query relies on: each record
// has an alpha-2 code, and alpha-2, alpha-3 and non-empty numeric codes are
// unique across the dataset. IOC codes may repeat.
func ValidateRecords(records []CountryRecord) (ValidationReport, error) {
	if len(records) == 0 {
		return ValidationReport{}, ErrEmptyDataset
	}

	var (
		problems []error
		report   = ValidationReport{Countries: len(records)}
		seen     = map[CodeKind]map[string]int{
			CodeAlpha2:  {},
			CodeAlpha3:  {},
			CodeNumeric: {},
		}
	)
	for i := range records {
		rec := &records[i]
		if rec.CCA2 == "" {
			problems = append(problems, fmt.Errorf("record %d (%s): missing cca2", i, rec.Name.Common))
		}
		for _, kind := range []CodeKind{CodeAlpha2, CodeAlpha3, CodeNumeric} {
			code := rec.code(kind)
			if code == "" {
				continue
			}
			if prev, dup := seen[kind][code]; dup {
				problems = append(problems, fmt.Errorf("record %d: duplicate %s %q (first seen at record %d)", i, kind, code, prev))
				continue
			}
			seen[kind][code] = i
		}
		if rec.Currencies.Len() == 0 {
			report.EmptyCurrencies = append(report.EmptyCurrencies, fmt.Sprintf("%s (%s)", rec.CCA2, rec.Name.Common))
		}
	}
	if len(problems) > 0 {
		return report, fmt.Errorf("%w: %w", ErrInvalidDataset, errors.Join(problems...))
	}
	return report, nil
}

// knownCountry defines a lookup that must succeed on any complete dataset.
type knownCountry struct {
	code       string
	wantAlpha2 string
	wantName   string
}

// knownCountries are used to validate a freshly built dataset end to end,
// one per code system.
var knownCountries = []knownCountry{
	{"CA", "CA", "Canada"},
	{"usa", "US", "United States"},
	{"250", "FR", "France"},
	{"GER", "DE", "Germany"},
	{"jp", "JP", "Japan"},
}

// SelfCheck runs known lookups against the repository and reports the first
// one that fails. It is meant for freshly regenerated full datasets.
func (r *Repository) SelfCheck() error {
	for _, kc := range knownCountries {
		c, ok := r.GetByCode(kc.code)
		if !ok {
			return fmt.Errorf("GetByCode(%q): not found", kc.code)
		}
		if c.Alpha2Code() != kc.wantAlpha2 || c.CommonName() != kc.wantName {
			return fmt.Errorf("GetByCode(%q) = %s %q, want %s %q",
				kc.code, c.Alpha2Code(), c.CommonName(), kc.wantAlpha2, kc.wantName)
		}
	}
	for _, region := range Regions() {
		if r.GetByRegion(region).Len() == 0 {
			return fmt.Errorf("region %q has no countries", region)
		}
	}
	return nil
}
