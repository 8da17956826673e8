package output

import (
	"encoding/csv"
	"strings"

	"kenpay/internal/batch"
	"kenpay/internal/domain"
)

// CSVFormatter renders machine-readable CSV.
type CSVFormatter struct{}

// FormatPayslip renders one payslip as a two-column name,amount CSV.
func (cf *CSVFormatter) FormatPayslip(slip *domain.Payslip) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	rows := [][]string{
		{"field", "value"},
		{"employment_type", string(slip.EmploymentType)},
		{"gross_pay", slip.GrossPay.StringFixed(2)},
		{"taxable_income", slip.TaxableIncome.StringFixed(2)},
		{"paye_tax", slip.PAYE.Tax.StringFixed(2)},
		{"nssf_employee", slip.NSSF.Employee.StringFixed(2)},
		{"nssf_employer", slip.NSSF.Employer.StringFixed(2)},
		{"shif_contribution", slip.SHIF.Contribution.StringFixed(2)},
		{"housing_levy_employee", slip.HousingLevy.Employee.StringFixed(2)},
		{"housing_levy_employer", slip.HousingLevy.Employer.StringFixed(2)},
		{"statutory_deductions", slip.StatutoryDeductions.StringFixed(2)},
		{"other_deductions", slip.OtherDeductions.StringFixed(2)},
		{"total_deductions", slip.TotalDeductions.StringFixed(2)},
		{"net_pay", slip.NetPay.StringFixed(2)},
		{"is_compliant", boolString(slip.Compliance.Compliant)},
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FormatReport renders a batch run as one CSV row per employee.
func (cf *CSVFormatter) FormatReport(report *batch.Report) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"payroll_number", "name", "employment_type",
		"gross_pay", "paye_tax", "nssf_employee", "shif_contribution",
		"housing_levy_employee", "total_deductions", "net_pay",
		"is_compliant", "error",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, res := range report.Results {
		row := cf.formatRow(&res)
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(res *batch.Result) []string {
	if res.Payslip == nil {
		return []string{
			res.Employee.PayrollNumber, res.Employee.Name, string(res.Employee.Input.EmploymentType),
			"", "", "", "", "", "", "", "", res.Err,
		}
	}
	slip := res.Payslip
	return []string{
		res.Employee.PayrollNumber,
		res.Employee.Name,
		string(slip.EmploymentType),
		slip.GrossPay.StringFixed(2),
		slip.PAYE.Tax.StringFixed(2),
		slip.NSSF.Employee.StringFixed(2),
		slip.SHIF.Contribution.StringFixed(2),
		slip.HousingLevy.Employee.StringFixed(2),
		slip.TotalDeductions.StringFixed(2),
		slip.NetPay.StringFixed(2),
		boolString(slip.Compliance.Compliant),
		"",
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
