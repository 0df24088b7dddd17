// Package countries provides offline lookup and search over an embedded
// dataset of country records: names, ISO and IOC codes, regions, currencies,
// languages, translations, demonyms and calling codes.
//
// The dataset is loaded once by New and never modified afterwards, so a
// *Repository is safe for concurrent use by any number of readers:
//
//	repo, err := countries.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ca, ok := repo.GetByCode("CA"); ok {
//	    fmt.Println(ca.OfficialName())
//	}
package countries

import (
	"compress/bzip2"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

//go:embed countries-data
var datasetFS embed.FS

// embeddedDataset is the path of the canonical dataset inside datasetFS.
// A ".bz2" sibling takes precedence when present.
const embeddedDataset = "countries-data/countries.json"

// Region names as they appear in the dataset.
const (
	RegionAfrica    = "Africa"
	RegionAmericas  = "Americas"
	RegionAntarctic = "Antarctic"
	RegionAsia      = "Asia"
	RegionEurope    = "Europe"
	RegionOceania   = "Oceania"
)

// Regions returns the recognised region names.
func Regions() []string {
	return []string{RegionAfrica, RegionAmericas, RegionAntarctic, RegionAsia, RegionEurope, RegionOceania}
}

var (
	// ErrDataFileNotFound is returned when the configured dataset file does not exist.
	ErrDataFileNotFound = errors.New("dataset file not found")
	// ErrEmptyDataset is returned when a dataset contains no records.
	ErrEmptyDataset = errors.New("dataset is empty")
)

// Config contains options for Repository initialization.
type Config struct {
	DataFile string      // JSON dataset to load instead of the embedded one (optionally .bz2)
	Logger   *zap.Logger // Defaults to a no-op logger
}

// Option is a functional option for configuring a Repository.
type Option func(*Config)

// WithDataFile loads the dataset from a JSON file instead of the embedded copy.
// The file must hold an array of records in the canonical schema.
func WithDataFile(path string) Option {
	return func(c *Config) {
		c.DataFile = path
	}
}

// WithLogger sets the logger used for load-time diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

func defaultConfig() *Config {
	return &Config{Logger: zap.NewNop()}
}

// Repository answers queries over the loaded dataset.
// Safe for concurrent use after New returns.
type Repository struct {
	records []CountryRecord
	logger  *zap.Logger
}

// New loads the dataset and returns a ready Repository.
//
//	repo, err := New(WithDataFile("/srv/data/countries.json"))
//
// Loading fails if the configured file is missing, does not parse, is empty,
// or violates the code uniqueness rules checked by ValidateRecords.
func New(opts ...Option) (*Repository, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	source := "embedded"
	var (
		records []CountryRecord
		err     error
	)
	if cfg.DataFile != "" {
		source = cfg.DataFile
		records, err = loadDataFile(cfg.DataFile)
	} else {
		records, err = loadEmbeddedDataset()
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s dataset: %w", source, err)
	}

	return newRepository(records, source, cfg.Logger)
}

// NewFromRecords builds a Repository over records that are already in memory,
// such as the output of a Transformer. The records are copied.
func NewFromRecords(records []CountryRecord, opts ...Option) (*Repository, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	owned := make([]CountryRecord, len(records))
	for i := range records {
		owned[i] = records[i].Clone()
	}
	return newRepository(owned, "memory", cfg.Logger)
}

func newRepository(records []CountryRecord, source string, logger *zap.Logger) (*Repository, error) {
	report, err := ValidateRecords(records)
	if err != nil {
		return nil, fmt.Errorf("validating %s dataset: %w", source, err)
	}
	if len(report.EmptyCurrencies) > 0 {
		logger.Info("countries without currencies",
			zap.String("source", source),
			zap.Strings("countries", report.EmptyCurrencies))
	}
	logger.Debug("dataset loaded",
		zap.String("source", source),
		zap.Int("countries", len(records)))

	return &Repository{records: records, logger: logger}, nil
}

// Len returns the number of records in the dataset.
func (r *Repository) Len() int { return len(r.records) }

func loadEmbeddedDataset() ([]CountryRecord, error) {
	if fh, err := datasetFS.Open(embeddedDataset + ".bz2"); err == nil {
		defer fh.Close()
		return decodeDataset(bzip2.NewReader(fh))
	}
	fh, err := datasetFS.Open(embeddedDataset)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", embeddedDataset, err)
	}
	defer fh.Close()
	return decodeDataset(fh)
}

func loadDataFile(path string) ([]CountryRecord, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: cannot find the file %q", ErrDataFileNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fh.Close()

	var r io.Reader = fh
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(fh)
	}
	return decodeDataset(r)
}

func decodeDataset(r io.Reader) ([]CountryRecord, error) {
	var records []CountryRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	return records, nil
}
