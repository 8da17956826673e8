package output

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"kenpay/internal/batch"
	"kenpay/internal/domain"
)

// TableFormatter renders aligned text tables for terminal use.
type TableFormatter struct{}

// FormatPayslip renders one payslip as a gross-to-net statement.
func (tf *TableFormatter) FormatPayslip(slip *domain.Payslip) (string, error) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Employment Type\t%s\n", slip.EmploymentType)
	fmt.Fprintf(w, "Gross Pay\t%s\n", slip.GrossPay.StringFixed(2))
	fmt.Fprintf(w, "Taxable Income\t%s\n", slip.TaxableIncome.StringFixed(2))
	fmt.Fprintln(w, "\t")

	fmt.Fprintln(w, "Deductions\t")
	fmt.Fprintf(w, "  PAYE\t%s\n", slip.PAYE.Tax.StringFixed(2))
	if slip.NSSF.Applicable {
		for _, tier := range slip.NSSF.Breakdown {
			fmt.Fprintf(w, "  NSSF Tier %d (%s%% of %s)\t%s\n",
				tier.Tier, tier.Rate.String(), tier.PensionableAmount.StringFixed(2), tier.Employee.StringFixed(2))
		}
	} else {
		fmt.Fprintf(w, "  NSSF\texempt\n")
	}
	fmt.Fprintf(w, "  SHIF\t%s\n", slip.SHIF.Contribution.StringFixed(2))
	if slip.HousingLevy.Applicable {
		fmt.Fprintf(w, "  Housing Levy\t%s\n", slip.HousingLevy.Employee.StringFixed(2))
	} else {
		fmt.Fprintf(w, "  Housing Levy\texempt\n")
	}
	if slip.OtherDeductions.IsPositive() {
		fmt.Fprintf(w, "  Other Deductions\t%s\n", slip.OtherDeductions.StringFixed(2))
	}
	fmt.Fprintf(w, "Total Deductions\t%s\n", slip.TotalDeductions.StringFixed(2))
	fmt.Fprintln(w, "\t")

	fmt.Fprintf(w, "Net Pay\t%s\n", slip.NetPay.StringFixed(2))
	fmt.Fprintf(w, "Effective Tax Rate\t%s%%\n", slip.PAYE.EffectiveRate.StringFixed(2))
	fmt.Fprintf(w, "Employer NSSF\t%s\n", slip.EmployerNSSF.StringFixed(2))
	fmt.Fprintf(w, "Employer Housing Levy\t%s\n", slip.EmployerHousingLevy.StringFixed(2))

	if err := w.Flush(); err != nil {
		return "", err
	}

	for _, msg := range slip.Compliance.Errors {
		fmt.Fprintf(&sb, "ERROR: %s\n", msg)
	}
	for _, msg := range slip.Compliance.Warnings {
		fmt.Fprintf(&sb, "WARNING: %s\n", msg)
	}
	for _, msg := range slip.Warnings {
		fmt.Fprintf(&sb, "WARNING: %s\n", msg)
	}
	return sb.String(), nil
}

// FormatReport renders a batch run: one row per employee plus totals.
func (tf *TableFormatter) FormatReport(report *batch.Report) (string, error) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "Payroll No\tName\tType\tGross\tPAYE\tNSSF\tSHIF\tHousing\tNet\tStatus")
	for _, res := range report.Results {
		if res.Payslip == nil {
			fmt.Fprintf(w, "%s\t%s\t%s\t-\t-\t-\t-\t-\t-\tFAILED: %s\n",
				res.Employee.PayrollNumber, res.Employee.Name, res.Employee.Input.EmploymentType, res.Err)
			continue
		}
		slip := res.Payslip
		status := "OK"
		if !slip.Compliance.Compliant {
			status = "NON-COMPLIANT"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			res.Employee.PayrollNumber,
			res.Employee.Name,
			slip.EmploymentType,
			slip.GrossPay.StringFixed(2),
			slip.PAYE.Tax.StringFixed(2),
			slip.NSSF.Employee.StringFixed(2),
			slip.SHIF.Contribution.StringFixed(2),
			slip.HousingLevy.Employee.StringFixed(2),
			slip.NetPay.StringFixed(2),
			status)
	}
	fmt.Fprintf(w, "TOTAL\t\t\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
		report.TotalGross.StringFixed(2),
		report.TotalPAYE.StringFixed(2),
		report.TotalNSSFEmployee.StringFixed(2),
		report.TotalSHIF.StringFixed(2),
		report.TotalHousingLevy.StringFixed(2),
		report.TotalNet.StringFixed(2))

	if err := w.Flush(); err != nil {
		return "", err
	}

	fmt.Fprintf(&sb, "\n%d employees, %d failed, %d non-compliant (as of %s)\n",
		report.Employees, report.Failed, report.NonCompliant, report.AsOf.Format("2006-01-02"))
	return sb.String(), nil
}
