package rates

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenpay/internal/domain"
)

func resolveDefault(t *testing.T, asOf time.Time) *Resolved {
	t.Helper()
	repo := NewRepository(DefaultSource())
	resolved, err := repo.Resolve(context.Background(), asOf)
	require.NoError(t, err)
	return resolved
}

func TestRepository_Resolve_CurrentSchedule(t *testing.T) {
	resolved := resolveDefault(t, day(2025, time.June, 30))

	require.Len(t, resolved.TaxBands, 5, "Inactive band generation must be excluded")
	assert.True(t, resolved.TaxBands[0].LowerLimit.IsZero())
	assert.Nil(t, resolved.TaxBands[4].UpperLimit, "Top band is unbounded")
	for i := 1; i < len(resolved.TaxBands); i++ {
		assert.True(t, resolved.TaxBands[i-1].LowerLimit.LessThan(resolved.TaxBands[i].LowerLimit),
			"Bands must be ordered ascending by lower limit")
	}

	require.Len(t, resolved.NSSFTiers, 2)
	assert.Equal(t, 1, resolved.NSSFTiers[0].Tier)
	assert.True(t, resolved.NSSFTiers[0].UpperLimit.Equal(decimal.NewFromInt(7000)))
	assert.True(t, resolved.NSSFTiers[1].UpperLimit.Equal(decimal.NewFromInt(36000)))

	require.NotNil(t, resolved.SHIF)
	assert.True(t, resolved.SHIF.Rate.Equal(decimal.RequireFromString("2.75")))
	require.NotNil(t, resolved.HousingLevy)
	assert.True(t, resolved.HousingLevy.EmployeeRate.Equal(decimal.RequireFromString("1.5")))

	personal, ok := resolved.Relief(domain.ReliefPersonal)
	require.True(t, ok)
	assert.True(t, personal.Amount.Equal(decimal.NewFromInt(2400)), "Latest personal relief generation wins")
}

func TestRepository_Resolve_LatestWinsByEffectiveDate(t *testing.T) {
	// Before April 2020 the older personal relief generation applies.
	resolved := resolveDefault(t, day(2019, time.June, 1))

	personal, ok := resolved.Relief(domain.ReliefPersonal)
	require.True(t, ok)
	assert.True(t, personal.Amount.Equal(decimal.NewFromInt(1408)))
}

func TestRepository_Resolve_MissingCategoryIsNotAnError(t *testing.T) {
	// SHIF only came into force in October 2024.
	resolved := resolveDefault(t, day(2024, time.June, 30))

	assert.Nil(t, resolved.SHIF, "No SHIF rate before its effective date")
	require.Len(t, resolved.NSSFTiers, 2, "February 2024 NSSF limits already apply")
	assert.True(t, resolved.NSSFTiers[1].UpperLimit.Equal(decimal.NewFromInt(36000)))
}

func TestRepository_Resolve_CachesPerDate(t *testing.T) {
	repo := NewRepository(DefaultSource())
	asOf := day(2025, time.June, 30)

	first, err := repo.Resolve(context.Background(), asOf)
	require.NoError(t, err)
	second, err := repo.Resolve(context.Background(), asOf)
	require.NoError(t, err)

	assert.Same(t, first, second, "Same as-of date must hit the cache")

	other, err := repo.Resolve(context.Background(), day(2024, time.June, 30))
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestRepository_ReliefCap(t *testing.T) {
	resolved := resolveDefault(t, day(2025, time.June, 30))

	mortgage, ok := resolved.ReliefCap(domain.ReliefMortgage)
	require.True(t, ok)
	assert.True(t, mortgage.Equal(decimal.NewFromInt(30000)))

	medical, ok := resolved.ReliefCap(domain.ReliefMedicalFund)
	require.True(t, ok)
	assert.True(t, medical.Equal(decimal.NewFromInt(15000)))

	_, ok = resolved.ReliefCap(domain.ReliefPersonal)
	assert.False(t, ok, "Personal relief has no cap configured")
}
