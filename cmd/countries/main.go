// Command countries queries the country dataset from the command line.
//
// Usage:
//
//	countries code CA
//	countries search name "united"
//	countries region Europe --format json
//	countries dropdown --key cca3 --lang fra
//	countries nearest -- 45.42 -75.69
//
// The dataset is the embedded one unless COUNTRIES_JSON_PATH (or json_path in
// countries.yaml) names a JSON file.
package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andreiashu/countries"
	"github.com/andreiashu/countries/internal/config"
	"github.com/andreiashu/countries/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds global flags for all commands.
type rootOptions struct {
	configFile string
	format     string // "json" | "text"
	repo       *countries.Repository
}

// validFormats defines the allowed output formats.
var validFormats = []string{"text", "json"}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "countries",
		Short:         "Look up and search country reference data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.format, validFormats)
			}
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			opts.repo, err = countries.New(append(cfg.RepositoryOptions(), countries.WithLogger(log))...)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: ./countries.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newCodeCommand(opts))
	cmd.AddCommand(newSearchCommand(opts))
	cmd.AddCommand(newRegionCommand(opts))
	cmd.AddCommand(newIndependentCommand(opts))
	cmd.AddCommand(newDropdownCommand(opts))
	cmd.AddCommand(newNearestCommand(opts))

	return cmd
}

func newCodeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "code <cca2|cca3|ccn3|cioc>",
		Short: "Find a country by code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := opts.repo.GetByCode(args[0])
			if !ok {
				return fmt.Errorf("no country with code %q", args[0])
			}
			return writeCountry(cmd.OutOrStdout(), opts.format, c)
		},
	}
}

// searchFields maps the search command's field argument to a query.
var searchFields = map[string]func(*countries.Repository, string) *countries.Countries{
	"name":        func(r *countries.Repository, q string) *countries.Countries { return r.GetByName(q) },
	"fullname":    (*countries.Repository).GetByFullName,
	"capital":     (*countries.Repository).GetByCapital,
	"currency":    (*countries.Repository).GetByCurrency,
	"language":    (*countries.Repository).GetByLanguage,
	"demonym":     (*countries.Repository).GetByDemonym,
	"translation": (*countries.Repository).GetByTranslation,
	"subregion":   (*countries.Repository).GetBySubregion,
}

func newSearchCommand(opts *rootOptions) *cobra.Command {
	var fuzzy int

	cmd := &cobra.Command{
		Use:   "search <name|fullname|capital|currency|language|demonym|translation|subregion> <text>",
		Short: "Search countries by a text field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, text := args[0], args[1]
			var result *countries.Countries
			if field == "name" && fuzzy > 0 {
				result = opts.repo.GetByName(text, countries.NameOptions{FuzzyDistance: fuzzy})
			} else {
				query, ok := searchFields[field]
				if !ok {
					return fmt.Errorf("unknown search field %q", field)
				}
				result = query(opts.repo, text)
			}
			return writeCountries(cmd.OutOrStdout(), opts.format, result)
		},
	}
	cmd.Flags().IntVar(&fuzzy, "fuzzy", 0, "max edit distance for name search (0-3)")
	return cmd
}

func newRegionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "region <name>",
		Short:     "List the countries of a region",
		Args:      cobra.ExactArgs(1),
		ValidArgs: countries.Regions(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCountries(cmd.OutOrStdout(), opts.format, opts.repo.GetByRegion(args[0]))
		},
	}
}

func newIndependentCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "independent [true|false]",
		Short: "List independent (or dependent) countries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := true
			if len(args) == 1 {
				var err error
				if status, err = strconv.ParseBool(args[0]); err != nil {
					return fmt.Errorf("invalid status %q: %w", args[0], err)
				}
			}
			return writeCountries(cmd.OutOrStdout(), opts.format, opts.repo.GetIndependent(status))
		},
	}
}

func newDropdownCommand(opts *rootOptions) *cobra.Command {
	var (
		key      string
		official bool
		lang     string
	)

	cmd := &cobra.Command{
		Use:   "dropdown",
		Short: "Print a code to name list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.repo.GetListForDropdown(key, official, lang)
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), opts.format, list)
		},
	}
	cmd.Flags().StringVar(&key, "key", "cca3", fmt.Sprintf("key field %v", countries.DropdownFields))
	cmd.Flags().BoolVar(&official, "official", false, "use official names")
	cmd.Flags().StringVar(&lang, "lang", "", "translation language, e.g. fra")
	return cmd
}

func newNearestCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "nearest [--] <lat> <lng>",
		Short: "Find the country whose centre is closest to a point",
		Long: `Find the country whose reference point is closest to the given coordinates.
Put "--" before the coordinates when either is negative.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid latitude %q: %w", args[0], err)
			}
			lng, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid longitude %q: %w", args[1], err)
			}
			c, ok := opts.repo.Nearest(lat, lng)
			if !ok {
				return fmt.Errorf("no country near %v, %v", lat, lng)
			}
			return writeCountry(cmd.OutOrStdout(), opts.format, c)
		},
	}
}
