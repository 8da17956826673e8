package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kenpay/internal/domain"
	"kenpay/internal/rates"
)

var twelve = decimal.NewFromInt(12)

// PAYEInput is one PAYE request. TaxableIncome is gross salary minus the
// employee's NSSF contribution; the caller performs that subtraction.
// The pointer fields are optional monthly relief-eligible amounts.
type PAYEInput struct {
	TaxableIncome         decimal.Decimal
	InsurancePremiums     *decimal.Decimal
	MortgageInterest      *decimal.Decimal
	PensionContribution   *decimal.Decimal
	PostRetirementMedical *decimal.Decimal
}

// PAYECalculator computes progressive income tax over the resolved band
// schedule. It is pure: all state is the read-only rate set.
type PAYECalculator struct {
	rates *rates.Resolved
}

// NewPAYECalculator creates a PAYE calculator over a resolved rate set.
func NewPAYECalculator(resolved *rates.Resolved) *PAYECalculator {
	return &PAYECalculator{rates: resolved}
}

// Calculate computes the PAYE breakdown for one monthly period.
func (c *PAYECalculator) Calculate(input PAYEInput) (*domain.PAYEResult, error) {
	if input.TaxableIncome.IsNegative() {
		return nil, fmt.Errorf("taxable income must not be negative, got %s", input.TaxableIncome)
	}
	for name, v := range map[string]*decimal.Decimal{
		"insurance premiums":      input.InsurancePremiums,
		"mortgage interest":       input.MortgageInterest,
		"pension contribution":    input.PensionContribution,
		"post-retirement medical": input.PostRetirementMedical,
	} {
		if v != nil && v.IsNegative() {
			return nil, fmt.Errorf("%s must not be negative, got %s", name, v)
		}
	}

	result := &domain.PAYEResult{TaxableIncome: domain.RoundMoney(input.TaxableIncome)}

	deductions := c.allowableDeductions(input, result)
	incomeAfter := decimal.Max(decimal.Zero, input.TaxableIncome.Sub(deductions))

	taxBeforeRelief := c.taxOnIncome(incomeAfter)
	reliefs := c.taxReliefs(input.InsurancePremiums, result)

	tax := decimal.Max(decimal.Zero, taxBeforeRelief.Sub(reliefs))

	result.IncomeAfterDeductions = domain.RoundMoney(incomeAfter)
	result.TaxBeforeRelief = domain.RoundMoney(taxBeforeRelief)
	result.Tax = domain.RoundMoney(tax)
	if input.TaxableIncome.IsPositive() {
		result.EffectiveRate = tax.Div(input.TaxableIncome).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return result, nil
}

// allowableDeductions caps each caller-asserted amount at its configured
// maximum and records the itemized breakdown on the result. A deduction
// whose cap is not configured is disallowed entirely, with a warning,
// rather than silently passed through.
func (c *PAYECalculator) allowableDeductions(input PAYEInput, result *domain.PAYEResult) decimal.Decimal {
	mortgage := c.capped(input.MortgageInterest, domain.ReliefMortgage, result)
	pension := c.capped(input.PensionContribution, domain.ReliefPension, result)
	medical := c.capped(input.PostRetirementMedical, domain.ReliefMedicalFund, result)

	total := mortgage.Add(pension).Add(medical)
	result.AllowableDeductions = domain.AllowableDeductions{
		MortgageInterest:      domain.RoundMoney(mortgage),
		PensionContribution:   domain.RoundMoney(pension),
		PostRetirementMedical: domain.RoundMoney(medical),
		Total:                 domain.RoundMoney(total),
	}
	return total
}

func (c *PAYECalculator) capped(amount *decimal.Decimal, relief domain.ReliefType, result *domain.PAYEResult) decimal.Decimal {
	if amount == nil || amount.IsZero() {
		return decimal.Zero
	}
	limit, ok := c.rates.ReliefCap(relief)
	if !ok {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("no active %s relief configured; deduction of %s disallowed", relief, amount))
		return decimal.Zero
	}
	return decimal.Min(*amount, limit)
}

// taxOnIncome walks the band schedule in ascending order. A band
// contributes nothing once income no longer reaches its lower limit.
func (c *PAYECalculator) taxOnIncome(income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	tax := decimal.Zero
	for _, band := range c.rates.TaxBands {
		if income.LessThanOrEqual(band.LowerLimit) {
			break
		}
		top := income
		if band.UpperLimit != nil {
			top = decimal.Min(income, *band.UpperLimit)
		}
		slice := top.Sub(band.LowerLimit)
		if slice.IsPositive() {
			tax = tax.Add(domain.PercentOf(slice, band.Rate))
		}
	}
	return tax
}

// taxReliefs computes personal relief plus insurance relief. Insurance
// relief is assessed annually: the configured percentage of annualized
// premiums, capped at the annual maximum, then prorated back to the month.
func (c *PAYECalculator) taxReliefs(insurancePremiums *decimal.Decimal, result *domain.PAYEResult) decimal.Decimal {
	personal := decimal.Zero
	if rel, ok := c.rates.Relief(domain.ReliefPersonal); ok && rel.Amount != nil {
		personal = *rel.Amount
	} else {
		result.Warnings = append(result.Warnings, "no active personal relief configured")
	}

	insurance := decimal.Zero
	if insurancePremiums != nil && insurancePremiums.IsPositive() {
		if rel, ok := c.rates.Relief(domain.ReliefInsurance); ok && rel.Rate != nil {
			annualPremiums := insurancePremiums.Mul(twelve)
			annualRelief := domain.PercentOf(annualPremiums, *rel.Rate)
			if rel.MaximumAmount != nil {
				annualRelief = decimal.Min(annualRelief, *rel.MaximumAmount)
			}
			insurance = annualRelief.Div(twelve)
		} else {
			result.Warnings = append(result.Warnings, "no active insurance relief configured")
		}
	}

	total := personal.Add(insurance)
	result.Reliefs = domain.TaxReliefs{
		Personal:  domain.RoundMoney(personal),
		Insurance: domain.RoundMoney(insurance),
		Total:     domain.RoundMoney(total),
	}
	return total
}
