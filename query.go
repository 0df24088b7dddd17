package countries

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned by GetListForDropdown for keys outside DropdownFields.
var ErrUnknownField = errors.New("unknown country field")

// GetByCode returns the country identified by code, detecting the code system
// from its shape:
//
//   - digits only: ISO numeric (ccn3), exact match
//   - two characters: alpha-2 (cca2), case-insensitive
//   - three characters: alpha-3 (cca3), case-insensitive, falling back to
//     the IOC code (cioc) when no alpha-3 code matches
//
// Any other input finds nothing. When several records match, the first one in
// dataset order wins.
func (r *Repository) GetByCode(code string) (Country, bool) {
	kind, ok := DetectCodeKind(code)
	if !ok {
		return Country{}, false
	}
	if c, ok := r.searchItem(kind, code); ok {
		return c, true
	}
	if kind == CodeAlpha3 {
		return r.searchItem(CodeIOC, code)
	}
	return Country{}, false
}

// GetByNumericCode returns the country with the given ISO numeric code.
// The number is zero-padded to three digits, so 36 finds Australia ("036").
func (r *Repository) GetByNumericCode(code int) (Country, bool) {
	if code < 0 {
		return Country{}, false
	}
	return r.GetByCode(fmt.Sprintf("%03d", code))
}

// GetByAlpha2Code returns the country with the given alpha-2 code.
//
// Deprecated: use GetByCode.
func (r *Repository) GetByAlpha2Code(code string) (Country, bool) {
	return r.GetByCode(code)
}

// GetByAlpha3Code returns the country with the given alpha-3 code.
//
// Deprecated: use GetByCode.
func (r *Repository) GetByAlpha3Code(code string) (Country, bool) {
	return r.GetByCode(code)
}

// GetByRegion returns the countries whose region is exactly region
// (case-sensitive), keyed by alpha-2 code.
func (r *Repository) GetByRegion(region string) *Countries {
	return r.filter(func(rec *CountryRecord) bool { return rec.Region == region })
}

// GetBySubregion returns the countries whose subregion is exactly subregion
// (case-sensitive), keyed by alpha-2 code.
func (r *Repository) GetBySubregion(subregion string) *Countries {
	return r.filter(func(rec *CountryRecord) bool { return rec.Subregion == subregion })
}

// GetByCurrency returns the countries using a currency whose code equals
// currency, or whose name contains it, ignoring case. "CAD" and "dollar" both
// find Canada.
func (r *Repository) GetByCurrency(currency string) *Countries {
	q := fold(currency)
	return r.filter(func(rec *CountryRecord) bool {
		for code, info := range rec.Currencies.All() {
			if fold(code) == q || containsFold(info.Name, q) {
				return true
			}
		}
		return false
	})
}

// NameOptions tunes GetByName.
type NameOptions struct {
	// FuzzyDistance is the maximum Levenshtein distance for typo-tolerant
	// matching. 0 disables it; values above 3 are capped.
	FuzzyDistance int
}

// GetByName returns the countries whose common, official or native names
// contain name, ignoring case. With a FuzzyDistance option, names within that
// many edits of name match too.
func (r *Repository) GetByName(name string, opts ...NameOptions) *Countries {
	var options NameOptions
	if len(opts) > 0 {
		options = opts[0]
	}
	if options.FuzzyDistance > maxFuzzyDistance {
		options.FuzzyDistance = maxFuzzyDistance
	}

	q := fold(name)
	return r.filter(func(rec *CountryRecord) bool {
		candidates := []string{rec.Name.Common, rec.Name.Official}
		for _, native := range rec.Name.Native.All() {
			candidates = append(candidates, native.Common, native.Official)
		}
		for _, c := range candidates {
			if containsFold(c, q) {
				return true
			}
		}
		for _, c := range candidates {
			if fuzzyMatch(q, c, options.FuzzyDistance) {
				return true
			}
		}
		return false
	})
}

// GetByFullName returns the countries whose common or official name equals
// name, ignoring case. Native names are not considered.
func (r *Repository) GetByFullName(name string) *Countries {
	q := fold(name)
	return r.filter(func(rec *CountryRecord) bool {
		return fold(rec.Name.Common) == q || fold(rec.Name.Official) == q
	})
}

// GetByLanguage returns the countries with an official language whose code
// equals language (e.g. "fra") or whose name contains it (e.g. "French"),
// ignoring case.
func (r *Repository) GetByLanguage(language string) *Countries {
	q := fold(language)
	return r.filter(func(rec *CountryRecord) bool {
		for code := range rec.Languages.All() {
			if fold(code) == q {
				return true
			}
		}
		for _, name := range rec.Languages.All() {
			if containsFold(name, q) {
				return true
			}
		}
		return false
	})
}

// GetByCapital returns the countries with a capital whose name contains
// capital, ignoring case.
func (r *Repository) GetByCapital(capital string) *Countries {
	q := fold(capital)
	return r.filter(func(rec *CountryRecord) bool {
		for _, c := range rec.Capital {
			if containsFold(c, q) {
				return true
			}
		}
		return false
	})
}

// GetByDemonym returns the countries with a masculine or feminine demonym,
// in any language, equal to demonym ignoring case.
func (r *Repository) GetByDemonym(demonym string) *Countries {
	q := fold(demonym)
	return r.filter(func(rec *CountryRecord) bool {
		for _, d := range rec.Demonyms.All() {
			if fold(d.F) == q || fold(d.M) == q {
				return true
			}
		}
		return false
	})
}

// GetByTranslation returns the countries with a translated common or official
// name containing translation, ignoring case.
func (r *Repository) GetByTranslation(translation string) *Countries {
	q := fold(translation)
	return r.filter(func(rec *CountryRecord) bool {
		for _, t := range rec.Translations.All() {
			if containsFold(t.Official, q) || containsFold(t.Common, q) {
				return true
			}
		}
		return false
	})
}

// GetIndependent returns the countries whose independence flag equals status.
func (r *Repository) GetIndependent(status bool) *Countries {
	return r.filter(func(rec *CountryRecord) bool { return rec.Independent == status })
}

// GetAll returns the countries identified by codes as a plain map. Each code
// is resolved on its own (digits: ccn3, two characters: cca2, three: cca3)
// and the result is keyed by the matched code in that system; codes that
// resolve to nothing are skipped. Without codes the whole dataset is
// returned keyed by alpha-2 code.
func (r *Repository) GetAll(codes ...string) map[string]Country {
	return r.CollectAll(codes...).Map()
}

// CollectAll is GetAll returning an ordered collection instead of a map.
// Entries follow the order of codes, or dataset order when codes is empty.
func (r *Repository) CollectAll(codes ...string) *Countries {
	if len(codes) == 0 {
		return r.filter(func(*CountryRecord) bool { return true })
	}

	out := NewOrderedMap[Country](len(codes))
	for _, code := range codes {
		kind, ok := DetectCodeKind(code)
		if !ok {
			continue
		}
		if c, ok := r.searchItem(kind, code); ok {
			out.set(c.Code(kind), c)
		}
	}
	return out
}

// GetListForDropdown maps the value of the key field (one of DropdownFields)
// to a display name for every country, in dataset order. The display name is
// the common name, or the official one when official is set, translated into
// localization (e.g. "fra") when the country has that translation.
//
// Keys are not unique for fields such as region: later countries overwrite
// earlier ones.
func (r *Repository) GetListForDropdown(key string, official bool, localization string) (*OrderedMap[string], error) {
	if _, ok := (&CountryRecord{}).field(key); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}

	list := NewOrderedMap[string](len(r.records))
	for i := range r.records {
		rec := &r.records[i]
		names := NameTranslation{Common: rec.Name.Common, Official: rec.Name.Official}
		if localization != "" {
			if t, ok := rec.Translations.Get(localization); ok {
				names = t
			}
		}
		k, _ := rec.field(key)
		if official {
			list.set(k, names.Official)
		} else {
			list.set(k, names.Common)
		}
	}
	return list, nil
}

// Neighbours returns the countries sharing a land border with the country
// identified by code, keyed by alpha-2 code in the order the borders are
// listed.
func (r *Repository) Neighbours(code string) *Countries {
	c, ok := r.GetByCode(code)
	if !ok {
		return NewOrderedMap[Country](0)
	}
	out := NewOrderedMap[Country](len(c.rec.Borders))
	for _, b := range c.rec.Borders {
		if n, ok := r.searchItem(CodeAlpha3, b); ok {
			out.set(n.Alpha2Code(), n)
		}
	}
	return out
}

// GetRawData returns a copy of the whole dataset, in dataset order.
func (r *Repository) GetRawData() []CountryRecord {
	out := make([]CountryRecord, len(r.records))
	for i := range r.records {
		out[i] = r.records[i].Clone()
	}
	return out
}

// searchItem returns the first record whose code of the given kind matches.
// Numeric codes compare exactly, the others ignore ASCII case.
func (r *Repository) searchItem(kind CodeKind, code string) (Country, bool) {
	for i := range r.records {
		v := r.records[i].code(kind)
		if v == "" {
			continue
		}
		if v == code || (kind != CodeNumeric && strings.EqualFold(v, code)) {
			return Country{rec: &r.records[i]}, true
		}
	}
	return Country{}, false
}

// filter returns the records matching keep, keyed by alpha-2 code.
func (r *Repository) filter(keep func(*CountryRecord) bool) *Countries {
	out := NewOrderedMap[Country](0)
	for i := range r.records {
		if keep(&r.records[i]) {
			out.set(r.records[i].CCA2, Country{rec: &r.records[i]})
		}
	}
	return out
}
