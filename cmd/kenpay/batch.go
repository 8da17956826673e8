package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kenpay/internal/batch"
	"kenpay/internal/calculation"
	"kenpay/internal/config"
	"kenpay/internal/output"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run a payroll period for a list of employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := cmd.Flags().GetString("input")
			if inputPath == "" {
				return fmt.Errorf("--input is required")
			}
			input, err := config.LoadBatchInput(inputPath)
			if err != nil {
				return err
			}

			asOf := input.AsOf
			if asOfRaw, _ := cmd.Flags().GetString("as-of"); asOfRaw != "" {
				if asOf, err = parseAsOf(asOfRaw); err != nil {
					return err
				}
			}

			ratesFile, _ := cmd.Flags().GetString("rates-file")
			repo, cleanup, err := buildRepository(cmd.Context(), ratesFile)
			if err != nil {
				return err
			}
			defer cleanup()

			engine := calculation.NewEngine(repo)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				engine.SetLogger(simpleCLILogger{})
			}

			workers, _ := cmd.Flags().GetInt("workers")
			runner := batch.NewRunner(engine, workers)
			report, err := runner.Run(cmd.Context(), input.Employees, asOf)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			formatter, err := output.NewFormatter(format)
			if err != nil {
				return err
			}
			rendered, err := formatter.FormatReport(report)
			if err != nil {
				return err
			}

			if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
				return os.WriteFile(outPath, []byte(rendered), 0o644)
			}
			fmt.Fprint(os.Stdout, rendered)
			return nil
		},
	}

	cmd.Flags().String("input", "", "batch input YAML file")
	cmd.Flags().String("output", "", "write the report to a file instead of stdout")
	cmd.Flags().Int("workers", 0, "concurrent workers (default: number of CPUs)")
	return cmd
}
