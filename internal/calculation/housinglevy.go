package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kenpay/internal/domain"
	"kenpay/internal/rates"
)

// HousingLevyCalculator computes the Affordable Housing Levy. The
// employee and employer rates are configured independently even though
// the current schedule sets both to 1.5%. Contract employees are exempt.
type HousingLevyCalculator struct {
	rates *rates.Resolved
}

// NewHousingLevyCalculator creates a levy calculator over a resolved
// rate set.
func NewHousingLevyCalculator(resolved *rates.Resolved) *HousingLevyCalculator {
	return &HousingLevyCalculator{rates: resolved}
}

// Applicable reports whether the levy applies to the employment type.
func (c *HousingLevyCalculator) Applicable(et domain.EmploymentType) bool {
	return !domain.IsExempt(domain.DeductionHousingLevy, et)
}

// Calculate computes the levy for a gross monthly salary. employmentType
// may be empty when the caller has no employee context.
func (c *HousingLevyCalculator) Calculate(grossSalary decimal.Decimal, employmentType domain.EmploymentType) (*domain.HousingLevyResult, error) {
	if grossSalary.IsNegative() {
		return nil, fmt.Errorf("gross salary must not be negative, got %s", grossSalary)
	}
	if employmentType != "" && !employmentType.Valid() {
		return nil, fmt.Errorf("unknown employment type %q", employmentType)
	}

	result := &domain.HousingLevyResult{
		GrossSalary: domain.RoundMoney(grossSalary),
		Applicable:  true,
	}

	if !c.Applicable(employmentType) {
		result.Applicable = false
		result.ExemptionReason = "contract employees are exempt from Housing Levy contributions"
		return result, nil
	}

	rate := c.rates.HousingLevy
	if rate == nil {
		result.Warnings = append(result.Warnings, "no active Housing Levy rate configured")
		return result, nil
	}
	if grossSalary.IsZero() {
		return result, nil
	}

	employee := domain.PercentOf(grossSalary, rate.EmployeeRate)
	employer := domain.PercentOf(grossSalary, rate.EmployerRate)

	result.Employee = domain.RoundMoney(employee)
	result.Employer = domain.RoundMoney(employer)
	result.Total = domain.RoundMoney(employee.Add(employer))
	result.EmployeeRate = rate.EmployeeRate
	result.EmployerRate = rate.EmployerRate
	return result, nil
}
