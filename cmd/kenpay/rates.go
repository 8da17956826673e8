package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"kenpay/internal/domain"
	"kenpay/internal/rates"
)

func ratesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the statutory rates applicable on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			resolved, err := repo.Resolve(cmd.Context(), asOf)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			if format == "json" {
				data, err := json.MarshalIndent(resolved, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, string(data))
				return nil
			}

			fmt.Fprint(os.Stdout, renderRates(resolved))
			return nil
		},
	}
	return cmd
}

func renderRates(resolved *rates.Resolved) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Statutory rates as of %s\n\n", resolved.AsOf.Format("2006-01-02"))

	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PAYE Bands\tRange\tRate")
	for _, band := range resolved.TaxBands {
		upper := "and above"
		if band.UpperLimit != nil {
			upper = "- " + band.UpperLimit.StringFixed(0)
		}
		fmt.Fprintf(w, "\t%s %s\t%s%%\n", band.LowerLimit.StringFixed(0), upper, band.Rate.String())
	}

	fmt.Fprintln(w, "NSSF Tiers\tRange\tRate")
	for _, tier := range resolved.NSSFTiers {
		upper := "and above"
		if tier.UpperLimit != nil {
			upper = "- " + tier.UpperLimit.StringFixed(0)
		}
		fmt.Fprintf(w, "\tTier %d: %s %s\t%s%%\n", tier.Tier, tier.LowerLimit.StringFixed(0), upper, tier.Rate.String())
	}

	if resolved.SHIF != nil {
		fmt.Fprintf(w, "SHIF\t%s%% of gross\tmin %s\n", resolved.SHIF.Rate.String(), resolved.SHIF.MinimumContribution.StringFixed(2))
	} else {
		fmt.Fprintln(w, "SHIF\tnot configured\t")
	}
	if resolved.HousingLevy != nil {
		fmt.Fprintf(w, "Housing Levy\temployee %s%%\temployer %s%%\n",
			resolved.HousingLevy.EmployeeRate.String(), resolved.HousingLevy.EmployerRate.String())
	} else {
		fmt.Fprintln(w, "Housing Levy\tnot configured\t")
	}

	fmt.Fprintln(w, "Reliefs\t\t")
	order := []domain.ReliefType{
		domain.ReliefPersonal, domain.ReliefInsurance, domain.ReliefMortgage,
		domain.ReliefPension, domain.ReliefMedicalFund,
	}
	for _, t := range order {
		relief, ok := resolved.Reliefs[t]
		if !ok {
			continue
		}
		switch {
		case relief.Amount != nil:
			fmt.Fprintf(w, "\t%s\t%s\n", relief.Type, relief.Amount.StringFixed(2))
		case relief.Rate != nil && relief.MaximumAmount != nil:
			fmt.Fprintf(w, "\t%s\t%s%% capped at %s/year\n", relief.Type, relief.Rate.String(), relief.MaximumAmount.StringFixed(0))
		case relief.MaximumAmount != nil:
			fmt.Fprintf(w, "\t%s\tcapped at %s/month\n", relief.Type, relief.MaximumAmount.StringFixed(0))
		}
	}
	w.Flush()
	return sb.String()
}
