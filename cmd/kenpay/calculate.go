package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"kenpay/internal/calculation"
	"kenpay/internal/domain"
	"kenpay/internal/output"
)

func decFlagPtr(cmd *cobra.Command, name string) (*decimal.Decimal, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil || raw == "" {
		return nil, err
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return &v, nil
}

func decFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	v, err := decFlagPtr(cmd, name)
	if err != nil {
		return decimal.Zero, err
	}
	if v == nil {
		return decimal.Zero, nil
	}
	return *v, nil
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute a single gross-to-net payslip",
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := decFlag(cmd, "gross")
			if err != nil {
				return err
			}
			rawType, _ := cmd.Flags().GetString("employment-type")
			employmentType, err := domain.ParseEmploymentType(rawType)
			if err != nil {
				return err
			}

			input := domain.PayslipInput{
				EmploymentType: employmentType,
				BasicSalary:    gross,
			}
			if input.InsurancePremiums, err = decFlagPtr(cmd, "insurance-premiums"); err != nil {
				return err
			}
			if input.MortgageInterest, err = decFlagPtr(cmd, "mortgage-interest"); err != nil {
				return err
			}
			if input.PensionContribution, err = decFlagPtr(cmd, "pension-contribution"); err != nil {
				return err
			}
			if input.PostRetirementMedical, err = decFlagPtr(cmd, "post-retirement-medical"); err != nil {
				return err
			}
			if input.OtherDeductions, err = decFlag(cmd, "other-deductions"); err != nil {
				return err
			}

			asOfRaw, _ := cmd.Flags().GetString("as-of")
			asOf, err := parseAsOf(asOfRaw)
			if err != nil {
				return err
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

			slip, err := engine.ComputePayslip(cmd.Context(), input, asOf)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			formatter, err := output.NewFormatter(format)
			if err != nil {
				return err
			}
			rendered, err := formatter.FormatPayslip(slip)
			if err != nil {
				return err
			}
			fmt.Fprint(os.Stdout, rendered)
			return nil
		},
	}

	cmd.Flags().String("gross", "0", "gross monthly salary")
	cmd.Flags().String("employment-type", "PERMANENT", "PERMANENT, CONTRACT, CASUAL or INTERN")
	cmd.Flags().String("insurance-premiums", "", "monthly insurance premiums (relief-eligible)")
	cmd.Flags().String("mortgage-interest", "", "monthly mortgage interest (deductible up to the configured cap)")
	cmd.Flags().String("pension-contribution", "", "monthly pension contribution (deductible up to the configured cap)")
	cmd.Flags().String("post-retirement-medical", "", "monthly post-retirement medical fund (deductible up to the configured cap)")
	cmd.Flags().String("other-deductions", "", "non-statutory deductions (loans, advances)")
	return cmd
}
