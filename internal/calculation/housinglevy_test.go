package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenpay/internal/domain"
)

func TestHousingLevyCalculator_BothSides(t *testing.T) {
	calc := NewHousingLevyCalculator(testRates(t))

	result, err := calc.Calculate(dec("50000"), domain.EmploymentPermanent)
	require.NoError(t, err)

	assert.True(t, result.Applicable)
	assertDecimalEqual(t, "750", result.Employee, "1.5% of 50000")
	assertDecimalEqual(t, "750", result.Employer)
	assertDecimalEqual(t, "1500", result.Total)
	assertDecimalEqual(t, "1.5", result.EmployeeRate)
	assertDecimalEqual(t, "1.5", result.EmployerRate)
}

func TestHousingLevyCalculator_NoCeiling(t *testing.T) {
	calc := NewHousingLevyCalculator(testRates(t))

	result, err := calc.Calculate(dec("1000000"), domain.EmploymentPermanent)
	require.NoError(t, err)
	assertDecimalEqual(t, "15000", result.Employee, "The levy has no upper earnings limit")
}

func TestHousingLevyCalculator_ContractExempt(t *testing.T) {
	calc := NewHousingLevyCalculator(testRates(t))

	result, err := calc.Calculate(dec("50000"), domain.EmploymentContract)
	require.NoError(t, err)

	assert.False(t, result.Applicable)
	assert.NotEmpty(t, result.ExemptionReason)
	assertDecimalEqual(t, "0", result.Employee)
	assertDecimalEqual(t, "0", result.Total)
}

func TestHousingLevyCalculator_ZeroGross(t *testing.T) {
	calc := NewHousingLevyCalculator(testRates(t))

	result, err := calc.Calculate(decimal.Zero, domain.EmploymentCasual)
	require.NoError(t, err)
	assert.True(t, result.Applicable)
	assertDecimalEqual(t, "0", result.Employee)
}

func TestHousingLevyCalculator_InvalidInputs(t *testing.T) {
	calc := NewHousingLevyCalculator(testRates(t))

	_, err := calc.Calculate(dec("-0.01"), domain.EmploymentPermanent)
	assert.Error(t, err)

	_, err = calc.Calculate(dec("100"), domain.EmploymentType("GIG"))
	assert.Error(t, err)
}
