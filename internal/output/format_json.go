package output

import (
	"encoding/json"

	"kenpay/internal/batch"
	"kenpay/internal/domain"
)

// JSONFormatter renders indented JSON of the structured results.
type JSONFormatter struct{}

// FormatPayslip marshals the full payslip breakdown.
func (jf *JSONFormatter) FormatPayslip(slip *domain.Payslip) (string, error) {
	data, err := json.MarshalIndent(slip, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// FormatReport marshals the full batch report.
func (jf *JSONFormatter) FormatReport(report *batch.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
