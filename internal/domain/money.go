package domain

import "github.com/shopspring/decimal"

// RoundMoney applies the statutory rounding policy: two decimal places,
// round half up. decimal.Round is half-away-from-zero, which is identical
// to half-up for the non-negative amounts every calculator produces.
//
// Calculators must call this only when constructing a result, never on
// intermediate sums, so that totals reproduce to the cent across a run.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentOf returns amount * rate / 100, unrounded. Rate tables store
// percentages (30 means 30%), matching how they are published.
func PercentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(decimal.NewFromInt(100))
}
