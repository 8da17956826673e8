package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"kenpay/internal/domain"
	"kenpay/internal/rates"
)

// Engine composes the statutory calculators into gross-to-net payslips.
// It resolves rates once per as-of date through the repository and runs
// pure arithmetic after that, so concurrent payslip computations for the
// same period share one read-only rate set.
type Engine struct {
	Repo   *rates.Repository
	Logger Logger
}

// NewEngine creates an engine over a rate repository.
func NewEngine(repo *rates.Repository) *Engine {
	return &Engine{Repo: repo, Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ComputePAYE resolves rates for asOf and runs the PAYE calculator.
func (e *Engine) ComputePAYE(ctx context.Context, input PAYEInput, asOf time.Time) (*domain.PAYEResult, error) {
	resolved, err := e.Repo.Resolve(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return NewPAYECalculator(resolved).Calculate(input)
}

// ComputeNSSF resolves rates for asOf and runs the NSSF calculator.
func (e *Engine) ComputeNSSF(ctx context.Context, grossSalary decimal.Decimal, employmentType domain.EmploymentType, asOf time.Time) (*domain.NSSFResult, error) {
	resolved, err := e.Repo.Resolve(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return NewNSSFCalculator(resolved).Calculate(grossSalary, employmentType)
}

// ComputeSHIF resolves rates for asOf and runs the SHIF calculator.
func (e *Engine) ComputeSHIF(ctx context.Context, grossSalary decimal.Decimal, asOf time.Time) (*domain.SHIFResult, error) {
	resolved, err := e.Repo.Resolve(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return NewSHIFCalculator(resolved).Calculate(grossSalary)
}

// ComputeHousingLevy resolves rates for asOf and runs the levy calculator.
func (e *Engine) ComputeHousingLevy(ctx context.Context, grossSalary decimal.Decimal, employmentType domain.EmploymentType, asOf time.Time) (*domain.HousingLevyResult, error) {
	resolved, err := e.Repo.Resolve(ctx, asOf)
	if err != nil {
		return nil, err
	}
	return NewHousingLevyCalculator(resolved).Calculate(grossSalary, employmentType)
}

// ComputePayslip runs the full gross-to-net composition for one employee
// period: NSSF first, PAYE on gross minus the employee NSSF contribution,
// SHIF and Housing Levy on gross, then compliance validation over the
// computed contributions.
func (e *Engine) ComputePayslip(ctx context.Context, input domain.PayslipInput, asOf time.Time) (*domain.Payslip, error) {
	if input.EmploymentType == "" {
		return nil, fmt.Errorf("employment type is required")
	}
	if !input.EmploymentType.Valid() {
		return nil, fmt.Errorf("unknown employment type %q", input.EmploymentType)
	}
	for _, check := range []struct {
		name   string
		amount decimal.Decimal
	}{
		{"basic salary", input.BasicSalary},
		{"house allowance", input.HouseAllowance},
		{"transport allowance", input.TransportAllowance},
		{"medical allowance", input.MedicalAllowance},
		{"lunch allowance", input.LunchAllowance},
		{"communication allowance", input.CommunicationAllowance},
		{"other allowances", input.OtherAllowances},
		{"overtime pay", input.OvertimePay},
		{"bonus", input.Bonus},
		{"loan deductions", input.LoanDeductions},
		{"advance deductions", input.AdvanceDeductions},
		{"other deductions", input.OtherDeductions},
	} {
		if check.amount.IsNegative() {
			return nil, fmt.Errorf("%s must not be negative, got %s", check.name, check.amount)
		}
	}

	resolved, err := e.Repo.Resolve(ctx, asOf)
	if err != nil {
		return nil, err
	}

	gross := input.GrossPay()
	e.Logger.Debugf("computing payslip: gross=%s type=%s asOf=%s",
		gross, input.EmploymentType, resolved.AsOf.Format("2006-01-02"))

	nssf, err := NewNSSFCalculator(resolved).Calculate(gross, input.EmploymentType)
	if err != nil {
		return nil, fmt.Errorf("nssf: %w", err)
	}

	taxable := gross.Sub(nssf.Employee)
	paye, err := NewPAYECalculator(resolved).Calculate(PAYEInput{
		TaxableIncome:         taxable,
		InsurancePremiums:     input.InsurancePremiums,
		MortgageInterest:      input.MortgageInterest,
		PensionContribution:   input.PensionContribution,
		PostRetirementMedical: input.PostRetirementMedical,
	})
	if err != nil {
		return nil, fmt.Errorf("paye: %w", err)
	}

	shif, err := NewSHIFCalculator(resolved).Calculate(gross)
	if err != nil {
		return nil, fmt.Errorf("shif: %w", err)
	}

	levy, err := NewHousingLevyCalculator(resolved).Calculate(gross, input.EmploymentType)
	if err != nil {
		return nil, fmt.Errorf("housing levy: %w", err)
	}

	compliance, err := ValidateCompliance(input.EmploymentType, nssf.Employee, levy.Employee)
	if err != nil {
		return nil, fmt.Errorf("compliance: %w", err)
	}

	statutory := paye.Tax.Add(nssf.Employee).Add(shif.Contribution).Add(levy.Employee)
	other := input.LoanDeductions.Add(input.AdvanceDeductions).Add(input.OtherDeductions)
	totalDeductions := statutory.Add(other)
	net := gross.Sub(totalDeductions)

	slip := &domain.Payslip{
		EmploymentType:      input.EmploymentType,
		GrossPay:            domain.RoundMoney(gross),
		TaxableIncome:       domain.RoundMoney(taxable),
		PAYE:                *paye,
		NSSF:                *nssf,
		SHIF:                *shif,
		HousingLevy:         *levy,
		Compliance:          *compliance,
		StatutoryDeductions: domain.RoundMoney(statutory),
		OtherDeductions:     domain.RoundMoney(other),
		TotalDeductions:     domain.RoundMoney(totalDeductions),
		NetPay:              domain.RoundMoney(net),
		EmployerNSSF:        nssf.Employer,
		EmployerHousingLevy: levy.Employer,
		TotalEmployerCost:   domain.RoundMoney(gross.Add(nssf.Employer).Add(levy.Employer)),
	}
	slip.Warnings = collectWarnings(paye.Warnings, nssf.Warnings, shif.Warnings, levy.Warnings)
	for _, w := range slip.Warnings {
		e.Logger.Warnf("payslip warning: %s", w)
	}
	if !compliance.Compliant {
		e.Logger.Warnf("payslip is non-compliant: %v", compliance.Errors)
	}
	return slip, nil
}

func collectWarnings(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}
