package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenpay/internal/rates"
)

func TestSHIFCalculator_PercentageAboveFloor(t *testing.T) {
	calc := NewSHIFCalculator(testRates(t))

	result, err := calc.Calculate(dec("50000"))
	require.NoError(t, err)

	assertDecimalEqual(t, "1375", result.Contribution, "2.75% of 50000")
	assertDecimalEqual(t, "1375", result.Calculated)
	assertDecimalEqual(t, "2.75", result.Rate)
	assertDecimalEqual(t, "300", result.MinimumContribution)
}

func TestSHIFCalculator_MinimumApplies(t *testing.T) {
	calc := NewSHIFCalculator(testRates(t))

	result, err := calc.Calculate(dec("8000"))
	require.NoError(t, err)

	assertDecimalEqual(t, "220", result.Calculated, "2.75% of 8000 is below the floor")
	assertDecimalEqual(t, "300", result.Contribution)
}

func TestSHIFCalculator_MinimumBoundary(t *testing.T) {
	calc := NewSHIFCalculator(testRates(t))

	// 300 / 2.75% is not a round salary; 10909.09 calculates to 299.999975
	// and still takes the floor, 10910 clears it.
	below, err := calc.Calculate(dec("10909.09"))
	require.NoError(t, err)
	assertDecimalEqual(t, "300", below.Contribution)

	above, err := calc.Calculate(dec("10910"))
	require.NoError(t, err)
	assertDecimalEqual(t, "300.03", above.Contribution)
}

func TestSHIFCalculator_ZeroGrossHasNoFloor(t *testing.T) {
	calc := NewSHIFCalculator(testRates(t))

	result, err := calc.Calculate(decimal.Zero)
	require.NoError(t, err)
	assertDecimalEqual(t, "0", result.Contribution, "The minimum only applies to earners")
}

func TestSHIFCalculator_NegativeGross(t *testing.T) {
	calc := NewSHIFCalculator(testRates(t))

	_, err := calc.Calculate(dec("-1"))
	assert.Error(t, err)
}

func TestSHIFCalculator_NoRateBeforeRollout(t *testing.T) {
	// SHIF took effect October 2024; resolving earlier finds no rate.
	resolved, err := rates.NewRepository(rates.DefaultSource()).
		Resolve(t.Context(), time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	result, err := NewSHIFCalculator(resolved).Calculate(dec("50000"))
	require.NoError(t, err)
	assertDecimalEqual(t, "0", result.Contribution)
	assert.Contains(t, result.Warnings, "no active SHIF rate configured")
}
