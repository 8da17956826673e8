// Package batch runs a payroll period across many employees. Employees
// are independent, so the run fans out over a bounded worker pool; the
// resolved rate set is shared read-only between workers. One employee's
// bad input is recorded against that employee and never aborts the run.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kenpay/internal/calculation"
	"kenpay/internal/domain"
)

// Employee is one batch input row.
type Employee struct {
	ID            uuid.UUID           `yaml:"id" json:"id"`
	PayrollNumber string              `yaml:"payroll_number" json:"payroll_number"`
	Name          string              `yaml:"name" json:"name"`
	Input         domain.PayslipInput `yaml:",inline" json:"input"`
}

// Result pairs an employee with their computed payslip, or the error
// that stopped it.
type Result struct {
	Employee Employee        `json:"employee"`
	Payslip  *domain.Payslip `json:"payslip,omitempty"`
	Err      string          `json:"error,omitempty"`
}

// Report aggregates a whole payroll run.
type Report struct {
	AsOf      time.Time `json:"as_of"`
	Results   []Result  `json:"results"`
	Employees int       `json:"employees"`
	Failed    int       `json:"failed"`
	// NonCompliant counts computed payslips whose compliance check failed.
	NonCompliant int `json:"non_compliant"`

	TotalGross        decimal.Decimal `json:"total_gross"`
	TotalPAYE         decimal.Decimal `json:"total_paye"`
	TotalNSSFEmployee decimal.Decimal `json:"total_nssf_employee"`
	TotalSHIF         decimal.Decimal `json:"total_shif"`
	TotalHousingLevy  decimal.Decimal `json:"total_housing_levy"`
	TotalNet          decimal.Decimal `json:"total_net"`
}

// Runner executes payroll runs against a calculation engine.
type Runner struct {
	Engine  *calculation.Engine
	Workers int
}

// NewRunner creates a runner. workers <= 0 selects GOMAXPROCS.
func NewRunner(engine *calculation.Engine, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{Engine: engine, Workers: workers}
}

// Run computes payslips for every employee as of the given date and
// aggregates the totals. Results keep the input order regardless of
// which worker finished first.
func (r *Runner) Run(ctx context.Context, employees []Employee, asOf time.Time) (*Report, error) {
	if len(employees) == 0 {
		return nil, fmt.Errorf("no employees to process")
	}

	// Warm the rate cache once so workers share a single resolution.
	resolved, err := r.Engine.Repo.Resolve(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("resolving rates: %w", err)
	}

	results := make([]Result, len(employees))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				emp := employees[i]
				slip, err := r.Engine.ComputePayslip(ctx, emp.Input, asOf)
				if err != nil {
					results[i] = Result{Employee: emp, Err: err.Error()}
					continue
				}
				results[i] = Result{Employee: emp, Payslip: slip}
			}
		}()
	}

	for i := range employees {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	report := &Report{
		AsOf:      resolved.AsOf,
		Results:   results,
		Employees: len(employees),
	}
	for _, res := range results {
		if res.Payslip == nil {
			report.Failed++
			r.Engine.Logger.Errorf("payslip failed for %s: %s", res.Employee.PayrollNumber, res.Err)
			continue
		}
		slip := res.Payslip
		if !slip.Compliance.Compliant {
			report.NonCompliant++
		}
		report.TotalGross = report.TotalGross.Add(slip.GrossPay)
		report.TotalPAYE = report.TotalPAYE.Add(slip.PAYE.Tax)
		report.TotalNSSFEmployee = report.TotalNSSFEmployee.Add(slip.NSSF.Employee)
		report.TotalSHIF = report.TotalSHIF.Add(slip.SHIF.Contribution)
		report.TotalHousingLevy = report.TotalHousingLevy.Add(slip.HousingLevy.Employee)
		report.TotalNet = report.TotalNet.Add(slip.NetPay)
	}
	return report, nil
}
