package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kenpay/internal/domain"
	"kenpay/internal/rates"
)

// NSSFCalculator computes tiered pension contributions. Contract
// employees are exempt regardless of salary; every other employment type
// contributes, with the employer matching the employee shilling for
// shilling.
type NSSFCalculator struct {
	rates *rates.Resolved
}

// NewNSSFCalculator creates an NSSF calculator over a resolved rate set.
func NewNSSFCalculator(resolved *rates.Resolved) *NSSFCalculator {
	return &NSSFCalculator{rates: resolved}
}

// Applicable reports whether NSSF applies to the employment type. An
// empty employment type means unspecified and is treated as applicable.
func (c *NSSFCalculator) Applicable(et domain.EmploymentType) bool {
	return !domain.IsExempt(domain.DeductionNSSF, et)
}

// Calculate computes the contribution breakdown for a gross monthly
// salary. employmentType may be empty when the caller has no employee
// context.
func (c *NSSFCalculator) Calculate(grossSalary decimal.Decimal, employmentType domain.EmploymentType) (*domain.NSSFResult, error) {
	if grossSalary.IsNegative() {
		return nil, fmt.Errorf("gross salary must not be negative, got %s", grossSalary)
	}
	if employmentType != "" && !employmentType.Valid() {
		return nil, fmt.Errorf("unknown employment type %q", employmentType)
	}

	result := &domain.NSSFResult{
		GrossSalary: domain.RoundMoney(grossSalary),
		Applicable:  true,
	}

	if !c.Applicable(employmentType) {
		result.Applicable = false
		result.ExemptionReason = "contract employees are exempt from NSSF contributions"
		return result, nil
	}

	if grossSalary.IsZero() {
		return result, nil
	}

	if len(c.rates.NSSFTiers) == 0 {
		result.Warnings = append(result.Warnings, "no active NSSF rates configured")
		return result, nil
	}

	tierTotals := map[int]decimal.Decimal{}
	employee := decimal.Zero
	for _, tier := range c.rates.NSSFTiers {
		top := grossSalary
		if tier.UpperLimit != nil {
			top = decimal.Min(grossSalary, *tier.UpperLimit)
		}
		// Lower limits are exclusive: tier 2 starts where tier 1 ends.
		pensionable := decimal.Max(decimal.Zero, top.Sub(tier.LowerLimit))
		if !pensionable.IsPositive() {
			continue
		}
		contribution := domain.PercentOf(pensionable, tier.Rate)
		tierTotals[tier.Tier] = tierTotals[tier.Tier].Add(contribution)
		employee = employee.Add(contribution)
		result.Breakdown = append(result.Breakdown, domain.NSSFTierContribution{
			Tier:              tier.Tier,
			PensionableAmount: domain.RoundMoney(pensionable),
			Rate:              tier.Rate,
			Employee:          domain.RoundMoney(contribution),
			Employer:          domain.RoundMoney(contribution),
		})
	}

	// The employer match is an invariant of the scheme, not a coincidence
	// of the current rates.
	employer := employee
	result.Tier1 = domain.RoundMoney(tierTotals[1])
	result.Tier2 = domain.RoundMoney(tierTotals[2])
	result.Employee = domain.RoundMoney(employee)
	result.Employer = domain.RoundMoney(employer)
	result.Total = domain.RoundMoney(employee.Add(employer))
	return result, nil
}
