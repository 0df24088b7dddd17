// Command update-dataset regenerates the embedded country dataset from the
// upstream restcountries export.
//
// Usage:
//
//	go run ./cmd/update-dataset
//	go run ./cmd/update-dataset --source ./countriesV3.1.json
//
// The result replaces countries-data/countries.json. Review the diff and the
// reported countries without currencies before committing it; new gaps
// belong in overrides.yaml.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andreiashu/countries"
	"github.com/andreiashu/countries/internal/config"
	"github.com/andreiashu/countries/internal/logger"
)

// minCountryCount guards against truncated upstream payloads. The upstream
// export carries 250 entries.
const minCountryCount = 240

type options struct {
	configFile   string
	source       string
	out          string
	overrides    string
	minCountries int
	timeout      time.Duration
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "update-dataset",
		Short:         "Regenerate the embedded country dataset",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("source") {
				opts.source = cfg.UpstreamURL
			}
			if !cmd.Flags().Changed("overrides") {
				opts.overrides = cfg.OverridesFile
			}
			if !cmd.Flags().Changed("timeout") {
				opts.timeout = cfg.FetchTimeout
			}
			log, err := logger.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			return run(ctx, opts, log, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "", "config file (default: ./countries.yaml if present)")
	cmd.Flags().StringVar(&opts.source, "source", countries.DefaultUpstreamURL, "upstream URL or local JSON file")
	cmd.Flags().StringVar(&opts.out, "out", "countries-data/countries.json", "output dataset file")
	cmd.Flags().StringVar(&opts.overrides, "overrides", "", "currency overrides YAML (default: the embedded table)")
	cmd.Flags().IntVar(&opts.minCountries, "min-countries", minCountryCount, "minimum number of countries expected upstream")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 60*time.Second, "fetch timeout")

	return cmd
}

func run(ctx context.Context, opts *options, log *zap.Logger, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	overrides, err := loadOverrides(opts.overrides)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Fetching countries data from: %s\n", opts.source)
	payload, err := countries.FetchUpstream(ctx, opts.source)
	if err != nil {
		return fmt.Errorf("fetching upstream: %w", err)
	}
	raws, err := countries.ParseUpstream(payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %d countries from source.\n", len(raws))
	if len(raws) < opts.minCountries {
		return fmt.Errorf("country count too low: got %d, want >= %d", len(raws), opts.minCountries)
	}

	result := countries.NewTransformer(overrides, log).TransformAll(raws)
	if len(result.EmptyCurrencies) > 0 {
		fmt.Fprintln(out, "\nWarning: Countries with empty currencies:")
		for _, entry := range result.EmptyCurrencies {
			fmt.Fprintf(out, "  - %s\n", entry)
		}
	}

	repo, err := countries.NewFromRecords(result.Records, countries.WithLogger(log))
	if err != nil {
		return err
	}
	if err := repo.SelfCheck(); err != nil {
		return fmt.Errorf("validating transformed dataset: %w", err)
	}

	fmt.Fprintf(out, "\nWriting %d countries to %s...\n", len(result.Records), opts.out)
	if err := writeFile(opts.out, result.Records); err != nil {
		return err
	}
	fmt.Fprintln(out, "Done.")
	return nil
}

func loadOverrides(path string) (*countries.Overrides, error) {
	if path == "" {
		return countries.DefaultOverrides()
	}
	return countries.LoadOverrides(path)
}

// writeFile writes the dataset next to path and renames it into place, so an
// interrupted run never leaves a truncated dataset behind.
func writeFile(path string, records []countries.CountryRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".countries-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmp.Name()) // best-effort cleanup of partial file
		}
	}()

	if err := countries.WriteDataset(tmp, records); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving dataset into place: %w", err)
	}
	success = true
	return nil
}
