package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"kenpay/internal/config"
	"kenpay/internal/rates"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "kenpay %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintf(os.Stdout, "go %s\n", bi.GoVersion)
			}
		},
	}
}

// buildRepository selects the rate source: an explicit YAML file first,
// then the configured rates database, then the built-in schedule.
func buildRepository(ctx context.Context, ratesFile string) (*rates.Repository, func(), error) {
	noop := func() {}
	if ratesFile != "" {
		source, err := rates.LoadFile(ratesFile)
		if err != nil {
			return nil, nil, err
		}
		return rates.NewRepository(source), noop, nil
	}
	if env := config.LoadEnv(); env.DatabaseURL != "" {
		source, closeFn, err := rates.Connect(ctx, env.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return rates.NewRepository(source), closeFn, nil
	}
	return rates.NewRepository(rates.DefaultSource()), noop, nil
}

func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	asOf, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return asOf, nil
}

func main() {
	root := &cobra.Command{
		Use:   "kenpay",
		Short: "Kenyan statutory payroll deduction engine",
		Long: "kenpay computes PAYE, NSSF, SHIF and Affordable Housing Levy deductions\n" +
			"from versioned rate tables, composes gross-to-net payslips and validates\n" +
			"statutory compliance.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("rates-file", "", "YAML rate configuration (default: database if configured, else built-in rates)")
	root.PersistentFlags().String("as-of", "", "calculation date YYYY-MM-DD (default: today)")
	root.PersistentFlags().String("format", "table", "output format: table, csv or json")
	root.PersistentFlags().Bool("verbose", false, "log calculation details")

	root.AddCommand(calculateCmd())
	root.AddCommand(batchCmd())
	root.AddCommand(ratesCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
