package countries

import (
	"encoding/json"
	"errors"
	"reflect"
	"slices"
)

// ErrNoCurrency is returned by Country.Currency for records without currencies.
var ErrNoCurrency = errors.New("country has no currency")

// Country is a read-only view over one record of the dataset.
// The zero value represents "no country" and is what lookups return on a miss.
type Country struct {
	rec *CountryRecord
}

// Countries is an ordered collection of countries keyed by code.
type Countries = OrderedMap[Country]

// IsZero reports whether c is the empty "not found" value.
func (c Country) IsZero() bool { return c.rec == nil }

// Alpha2Code returns the ISO 3166-1 alpha-2 code (e.g. "CA").
func (c Country) Alpha2Code() string { return c.rec.CCA2 }

// Alpha3Code returns the ISO 3166-1 alpha-3 code (e.g. "CAN").
func (c Country) Alpha3Code() string { return c.rec.CCA3 }

// NumericCode returns the ISO 3166-1 numeric code (e.g. "124"). Empty for
// territories without one.
func (c Country) NumericCode() string { return c.rec.CCN3 }

// IOCCode returns the International Olympic Committee code, possibly empty.
func (c Country) IOCCode() string { return c.rec.CIOC }

// Code returns the identifier of the given kind.
func (c Country) Code(kind CodeKind) string { return c.rec.code(kind) }

func (c Country) CommonName() string   { return c.rec.Name.Common }
func (c Country) OfficialName() string { return c.rec.Name.Official }

// NativeName returns the native name in the given language.
func (c Country) NativeName(lang string) (NameTranslation, bool) {
	return c.rec.Name.Native.Get(lang)
}

// Translation returns the name translated into lang (e.g. "fra").
func (c Country) Translation(lang string) (NameTranslation, bool) {
	return c.rec.Translations.Get(lang)
}

func (c Country) Region() string    { return c.rec.Region }
func (c Country) Subregion() string { return c.rec.Subregion }
func (c Country) Status() string    { return c.rec.Status }
func (c Country) Independent() bool { return c.rec.Independent }
func (c Country) UNMember() bool    { return c.rec.UNMember }
func (c Country) Landlocked() bool  { return c.rec.Landlocked }
func (c Country) Area() float64     { return c.rec.Area }
func (c Country) Flag() string      { return c.rec.Flag }

func (c Country) Capital() []string      { return slices.Clone(c.rec.Capital) }
func (c Country) TLD() []string          { return slices.Clone(c.rec.TLD) }
func (c Country) AltSpellings() []string { return slices.Clone(c.rec.AltSpellings) }
func (c Country) Borders() []string      { return slices.Clone(c.rec.Borders) }
func (c Country) CallingCodes() []string { return slices.Clone(c.rec.CallingCodes) }

// IDD returns the dialing prefix the calling codes are derived from.
func (c Country) IDD() IDD {
	return IDD{Root: c.rec.IDD.Root, Suffixes: slices.Clone(c.rec.IDD.Suffixes)}
}

// Languages returns the official languages keyed by ISO 639-3 code.
func (c Country) Languages() OrderedMap[string] { return c.rec.Languages.Clone() }

// Demonym returns the demonyms in the given language.
func (c Country) Demonym(lang string) (Demonym, bool) { return c.rec.Demonyms.Get(lang) }

// Currency returns the first currency in stored order. For countries with
// several currencies the choice is the dataset's, not a ranking.
func (c Country) Currency() (Currency, error) {
	code, info, ok := c.rec.Currencies.First()
	if !ok {
		return Currency{}, ErrNoCurrency
	}
	return NewCurrency(code, info.Name, info.Symbol), nil
}

// Currencies returns every currency in stored order.
func (c Country) Currencies() []Currency {
	out := make([]Currency, 0, c.rec.Currencies.Len())
	for code, info := range c.rec.Currencies.All() {
		out = append(out, NewCurrency(code, info.Name, info.Symbol))
	}
	return out
}

// Attributes returns a deep copy of the underlying record.
func (c Country) Attributes() CountryRecord { return c.rec.Clone() }

// Equal reports whether both countries carry identical attributes.
func (c Country) Equal(other Country) bool {
	if c.rec == nil || other.rec == nil {
		return c.rec == other.rec
	}
	return c.rec == other.rec || reflect.DeepEqual(*c.rec, *other.rec)
}

// FlatCountry is the compact projection used for exports.
type FlatCountry struct {
	Name         string    `json:"name"`
	Alpha2Code   string    `json:"alpha2Code"`
	Alpha3Code   string    `json:"alpha3Code"`
	NumericCode  string    `json:"numericCode"`
	CommonName   string    `json:"commonName"`
	OfficialName string    `json:"officialName"`
	Currency     *Currency `json:"currency"`
}

// Flat returns the compact export projection of c.
func (c Country) Flat() FlatCountry {
	f := FlatCountry{
		Name:         c.rec.Name.Common,
		Alpha2Code:   c.rec.CCA2,
		Alpha3Code:   c.rec.CCA3,
		NumericCode:  c.rec.CCN3,
		CommonName:   c.rec.Name.Common,
		OfficialName: c.rec.Name.Official,
	}
	if cur, err := c.Currency(); err == nil {
		f.Currency = &cur
	}
	return f
}

// MarshalJSON encodes the full underlying record.
func (c Country) MarshalJSON() ([]byte, error) {
	if c.rec == nil {
		return []byte("null"), nil
	}
	return json.Marshal(c.rec)
}

func (c Country) String() string {
	if c.rec == nil {
		return ""
	}
	return c.rec.Name.Common
}
