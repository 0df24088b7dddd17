package countries

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
)

// DefaultUpstreamURL is the restcountries v3.1 export the dataset is built from.
const DefaultUpstreamURL = "https://gitlab.com/restcountries/restcountries/-/raw/master/src/main/resources/countriesV3.1.json?ref_type=heads"

// ErrEmptyPayload is returned when the upstream source holds no countries.
var ErrEmptyPayload = errors.New("upstream payload is empty")

// SupportedTranslations lists the languages whose translations are kept.
// Translations in any other language are dropped by Transform.
var SupportedTranslations = []string{
	"ara", "bre", "ces", "cym", "deu", "est", "fin", "fra", "hrv", "hun",
	"ind", "ita", "jpn", "kor", "nld", "per", "pol", "por", "rus", "slk",
	"spa", "srp", "swe", "tur", "urd", "zho",
}

// RawCountry is a country as published upstream (restcountries v3.1).
// Fields the canonical schema does not carry (maps, population, car, ...)
// are ignored.
type RawCountry struct {
	Name struct {
		Common     string                      `json:"common"`
		Official   string                      `json:"official"`
		NativeName OrderedMap[NameTranslation] `json:"nativeName"`
	} `json:"name"`
	TLD          []string                    `json:"tld"`
	CCA2         string                      `json:"cca2"`
	CCN3         string                      `json:"ccn3"`
	CCA3         string                      `json:"cca3"`
	CIOC         string                      `json:"cioc"`
	Independent  bool                        `json:"independent"`
	Status       string                      `json:"status"`
	UNMember     bool                        `json:"unMember"`
	Currencies   OrderedMap[CurrencyInfo]    `json:"currencies"`
	IDD          *IDD                        `json:"idd"`
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
}

// CallingCodes derives the international calling codes from a dialing
// prefix: none without a root, the bare root without suffixes, otherwise
// root+suffix for each suffix in order.
func CallingCodes(idd IDD) []string {
	if idd.Root == "" {
		return []string{}
	}
	if len(idd.Suffixes) == 0 {
		return []string{idd.Root}
	}
	codes := make([]string, 0, len(idd.Suffixes))
	for _, s := range idd.Suffixes {
		codes = append(codes, idd.Root+s)
	}
	return codes
}

// Transform converts one upstream country into a canonical record.
// Currencies come from overrides when the country has an entry there;
// translations are restricted to SupportedTranslations; every optional field
// gets an explicit empty default.
func Transform(raw RawCountry, overrides *Overrides) CountryRecord {
	currencies, ok := overrides.Lookup(raw.CCA2)
	if !ok {
		currencies = raw.Currencies
	}

	var translations OrderedMap[NameTranslation]
	for _, lang := range SupportedTranslations {
		if t, ok := raw.Translations.Get(lang); ok {
			translations.set(lang, t)
		}
	}

	idd := IDD{Suffixes: []string{}}
	if raw.IDD != nil {
		idd.Root = raw.IDD.Root
		idd.Suffixes = orEmpty(raw.IDD.Suffixes)
	}

	return CountryRecord{
		Name: Name{
			Common:   raw.Name.Common,
			Official: raw.Name.Official,
			Native:   raw.Name.NativeName.Clone(),
		},
		TLD:          orEmpty(raw.TLD),
		CCA2:         raw.CCA2,
		CCN3:         raw.CCN3,
		CCA3:         raw.CCA3,
		CIOC:         raw.CIOC,
		Independent:  raw.Independent,
		Status:       raw.Status,
		UNMember:     raw.UNMember,
		Currencies:   currencies.Clone(),
		IDD:          idd,
		Capital:      orEmpty(raw.Capital),
		AltSpellings: orEmpty(raw.AltSpellings),
		Region:       raw.Region,
		Subregion:    raw.Subregion,
		Languages:    raw.Languages.Clone(),
		Translations: translations,
		LatLng:       orEmpty(raw.LatLng),
		Landlocked:   raw.Landlocked,
		Borders:      orEmpty(raw.Borders),
		Area:         raw.Area,
		Flag:         raw.Flag,
		Demonyms:     raw.Demonyms.Clone(),
		CallingCodes: CallingCodes(idd),
	}
}

// orEmpty copies s, turning nil into an empty slice.
func orEmpty[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Transformer converts whole upstream payloads and audits the result.
type Transformer struct {
	overrides *Overrides
	logger    *zap.Logger
}

// NewTransformer returns a Transformer applying overrides. A nil logger
// disables logging.
func NewTransformer(overrides *Overrides, logger *zap.Logger) *Transformer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transformer{overrides: overrides, logger: logger}
}

// TransformResult is the outcome of Transformer.TransformAll.
type TransformResult struct {
	Records []CountryRecord
	// EmptyCurrencies lists, as "CC (Name)", the countries left without any
	// currency after overrides. Reported for auditing, not an error.
	EmptyCurrencies []string
}

// TransformAll transforms raws in order.
func (t *Transformer) TransformAll(raws []RawCountry) TransformResult {
	res := TransformResult{Records: make([]CountryRecord, 0, len(raws))}
	for _, raw := range raws {
		rec := Transform(raw, t.overrides)
		if rec.Currencies.Len() == 0 {
			res.EmptyCurrencies = append(res.EmptyCurrencies, fmt.Sprintf("%s (%s)", rec.CCA2, rec.Name.Common))
		}
		res.Records = append(res.Records, rec)
	}
	if len(res.EmptyCurrencies) > 0 {
		t.logger.Warn("countries with empty currencies",
			zap.Strings("countries", res.EmptyCurrencies))
	}
	version := ""
	if t.overrides != nil {
		version = t.overrides.Version
	}
	t.logger.Info("transformed upstream countries",
		zap.Int("countries", len(res.Records)),
		zap.String("overridesVersion", version))
	return res
}

// ParseUpstream decodes an upstream JSON payload.
func ParseUpstream(data []byte) ([]RawCountry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyPayload
	}
	var raws []RawCountry
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parsing upstream countries: %w", err)
	}
	if len(raws) == 0 {
		return nil, ErrEmptyPayload
	}
	return raws, nil
}

// httpClient is a shared HTTP client with reasonable timeouts.
var httpClient = &http.Client{
	Timeout: 60 * time.Second,
}

// FetchUpstream reads the upstream payload from an http(s) URL or a local
// file path.
func FetchUpstream(ctx context.Context, source string) ([]byte, error) {
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return fetchURL(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", source, err)
	}
	return data, nil
}

func fetchURL(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", source, err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP GET %s: status %d", source, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return data, nil
}

// WriteDataset writes records as the indented JSON array embedded by the package.
func WriteDataset(w io.Writer, records []CountryRecord) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	return nil
}
