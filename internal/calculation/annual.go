package calculation

import (
	"github.com/shopspring/decimal"

	"kenpay/internal/domain"
)

// AnnualizePAYE scales a monthly PAYE breakdown to annual amounts. The
// effective tax rate is a ratio and is carried over unchanged; warnings
// travel with the result.
func AnnualizePAYE(monthly *domain.PAYEResult) *domain.PAYEResult {
	x12 := func(d decimal.Decimal) decimal.Decimal { return d.Mul(twelve) }
	return &domain.PAYEResult{
		TaxableIncome: x12(monthly.TaxableIncome),
		AllowableDeductions: domain.AllowableDeductions{
			MortgageInterest:      x12(monthly.AllowableDeductions.MortgageInterest),
			PensionContribution:   x12(monthly.AllowableDeductions.PensionContribution),
			PostRetirementMedical: x12(monthly.AllowableDeductions.PostRetirementMedical),
			Total:                 x12(monthly.AllowableDeductions.Total),
		},
		IncomeAfterDeductions: x12(monthly.IncomeAfterDeductions),
		TaxBeforeRelief:       x12(monthly.TaxBeforeRelief),
		Reliefs: domain.TaxReliefs{
			Personal:  x12(monthly.Reliefs.Personal),
			Insurance: x12(monthly.Reliefs.Insurance),
			Total:     x12(monthly.Reliefs.Total),
		},
		Tax:           x12(monthly.Tax),
		EffectiveRate: monthly.EffectiveRate,
		Warnings:      monthly.Warnings,
	}
}
