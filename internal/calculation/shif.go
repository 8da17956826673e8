package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kenpay/internal/domain"
	"kenpay/internal/rates"
)

// SHIFCalculator computes the health levy: a percentage of gross salary
// with a minimum monthly contribution. SHIF applies to every employment
// type; there is no exemption.
type SHIFCalculator struct {
	rates *rates.Resolved
}

// NewSHIFCalculator creates a SHIF calculator over a resolved rate set.
func NewSHIFCalculator(resolved *rates.Resolved) *SHIFCalculator {
	return &SHIFCalculator{rates: resolved}
}

// Calculate computes the SHIF contribution for a gross monthly salary.
func (c *SHIFCalculator) Calculate(grossSalary decimal.Decimal) (*domain.SHIFResult, error) {
	if grossSalary.IsNegative() {
		return nil, fmt.Errorf("gross salary must not be negative, got %s", grossSalary)
	}

	result := &domain.SHIFResult{GrossSalary: domain.RoundMoney(grossSalary)}

	rate := c.rates.SHIF
	if rate == nil {
		result.Warnings = append(result.Warnings, "no active SHIF rate configured")
		return result, nil
	}
	if grossSalary.IsZero() {
		return result, nil
	}

	calculated := domain.PercentOf(grossSalary, rate.Rate)
	contribution := decimal.Max(calculated, rate.MinimumContribution)

	result.Contribution = domain.RoundMoney(contribution)
	result.Rate = rate.Rate
	result.MinimumContribution = rate.MinimumContribution
	result.Calculated = domain.RoundMoney(calculated)
	return result, nil
}
