package countries

import (
	"slices"
)

// CountryRecord is one entry of the canonical dataset.
//
// Records are produced by the Transformer and never modified afterwards.
// Slices and maps handed out by the package are copies; callers that want to
// derive their own views should start from Country.Attributes.
type CountryRecord struct {
	Name         Name                        `json:"name"`
	TLD          []string                    `json:"tld"`
	CCA2         string                      `json:"cca2"`
	CCN3         string                      `json:"ccn3"`
	CCA3         string                      `json:"cca3"`
	CIOC         string                      `json:"cioc"`
	Independent  bool                        `json:"independent"`
	Status       string                      `json:"status"`
	UNMember     bool                        `json:"unMember"`
	Currencies   OrderedMap[CurrencyInfo]    `json:"currencies"`
	IDD          IDD                         `json:"idd"`
	Capital      []string                    `json:"capital"`
	AltSpellings []string                    `json:"altSpellings"`
	Region       string                      `json:"region"`
	Subregion    string                      `json:"subregion"`
	Languages    OrderedMap[string]          `json:"languages"`
	Translations OrderedMap[NameTranslation] `json:"translations"`
	LatLng       []float64                   `json:"latlng"`
	Landlocked   bool                        `json:"landlocked"`
	Borders      []string                    `json:"borders"`
	Area         float64                     `json:"area"`
	Flag         string                      `json:"flag"`
	Demonyms     OrderedMap[Demonym]         `json:"demonyms"`
	CallingCodes []string                    `json:"callingCodes"`
}

// Name holds the English and native names of a country.
type Name struct {
	Common   string                      `json:"common"`
	Official string                      `json:"official"`
	Native   OrderedMap[NameTranslation] `json:"native"`
}

// NameTranslation is a common/official name pair in one language.
type NameTranslation struct {
	Official string `json:"official"`
	Common   string `json:"common"`
}

// CurrencyInfo is a currency entry keyed by its ISO 4217 code.
type CurrencyInfo struct {
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// Demonym holds the feminine and masculine demonym in one language.
type Demonym struct {
	F string `json:"f"`
	M string `json:"m"`
}

// IDD is the international direct dialing prefix: a root such as "+1" and
// the suffixes that follow it.
type IDD struct {
	Root     string   `json:"root"`
	Suffixes []string `json:"suffixes"`
}

// Clone returns a deep copy of r.
func (r CountryRecord) Clone() CountryRecord {
	c := r
	c.Name.Native = r.Name.Native.Clone()
	c.TLD = slices.Clone(r.TLD)
	c.Currencies = r.Currencies.Clone()
	c.IDD.Suffixes = slices.Clone(r.IDD.Suffixes)
	c.Capital = slices.Clone(r.Capital)
	c.AltSpellings = slices.Clone(r.AltSpellings)
	c.Languages = r.Languages.Clone()
	c.Translations = r.Translations.Clone()
	c.LatLng = slices.Clone(r.LatLng)
	c.Borders = slices.Clone(r.Borders)
	c.Demonyms = r.Demonyms.Clone()
	c.CallingCodes = slices.Clone(r.CallingCodes)
	return c
}

// DropdownFields lists the record fields usable as keys for
// Repository.GetListForDropdown.
var DropdownFields = []string{"cca2", "cca3", "ccn3", "cioc", "region", "subregion", "status", "flag"}

// field returns a scalar field by its JSON name. Only the fields in
// DropdownFields are addressable.
func (r *CountryRecord) field(name string) (string, bool) {
	switch name {
	case "cca2":
		return r.CCA2, true
	case "cca3":
		return r.CCA3, true
	case "ccn3":
		return r.CCN3, true
	case "cioc":
		return r.CIOC, true
	case "region":
		return r.Region, true
	case "subregion":
		return r.Subregion, true
	case "status":
		return r.Status, true
	case "flag":
		return r.Flag, true
	}
	return "", false
}

// code returns the identifier of the given kind.
func (r *CountryRecord) code(kind CodeKind) string {
	switch kind {
	case CodeAlpha2:
		return r.CCA2
	case CodeAlpha3:
		return r.CCA3
	case CodeNumeric:
		return r.CCN3
	case CodeIOC:
		return r.CIOC
	}
	return ""
}
