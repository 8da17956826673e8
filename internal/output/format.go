// Package output renders payslips and batch reports for the CLI. The
// structured result types remain the API; these formatters are purely a
// presentation layer.
package output

import (
	"fmt"

	"kenpay/internal/batch"
	"kenpay/internal/domain"
)

// Formatter renders a single payslip or a whole batch report.
type Formatter interface {
	FormatPayslip(slip *domain.Payslip) (string, error)
	FormatReport(report *batch.Report) (string, error)
}

// NewFormatter selects a formatter by name: table, csv or json.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "", "table":
		return &TableFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected table, csv or json)", format)
	}
}
