package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenpay/internal/domain"
)

func TestValidateCompliance_PermanentWithContributions(t *testing.T) {
	result, err := ValidateCompliance(domain.EmploymentPermanent, dec("1200"), dec("300"))
	require.NoError(t, err)

	assert.True(t, result.Compliant)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateCompliance_PermanentMissingNSSF(t *testing.T) {
	result, err := ValidateCompliance(domain.EmploymentPermanent, decimal.Zero, dec("300"))
	require.NoError(t, err)

	assert.False(t, result.Compliant)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "NSSF")
}

func TestValidateCompliance_CasualMissingBoth(t *testing.T) {
	result, err := ValidateCompliance(domain.EmploymentCasual, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assert.False(t, result.Compliant)
	assert.Len(t, result.Errors, 2)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "casual workers")
}

func TestValidateCompliance_ContractWithoutDeductions(t *testing.T) {
	result, err := ValidateCompliance(domain.EmploymentContract, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, result.Compliant, "Exempt contributions are not errors")
	assert.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "only SHIF deductions apply")
}

func TestValidateCompliance_ContractWithDeductions(t *testing.T) {
	result, err := ValidateCompliance(domain.EmploymentContract, dec("1200"), dec("750"))
	require.NoError(t, err)

	assert.True(t, result.Compliant, "Over-deduction is flagged but not a compliance failure")
	assert.Len(t, result.Warnings, 3, "One per wrongly deducted levy plus the contract note")
}

func TestValidateCompliance_InvalidEmploymentType(t *testing.T) {
	_, err := ValidateCompliance(domain.EmploymentType("CONSULTANT"), dec("1"), dec("1"))
	assert.Error(t, err)
}
