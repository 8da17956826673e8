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

func TestLoadFile(t *testing.T) {
	source, err := LoadFile("testdata/rates.yaml")
	require.NoError(t, err)

	repo := NewRepository(source)
	resolved, err := repo.Resolve(context.Background(), day(2025, time.June, 30))
	require.NoError(t, err)

	require.Len(t, resolved.TaxBands, 3)
	assert.True(t, resolved.TaxBands[1].Rate.Equal(decimal.NewFromInt(25)))
	assert.Nil(t, resolved.TaxBands[2].UpperLimit)

	require.Len(t, resolved.NSSFTiers, 2)
	require.NotNil(t, resolved.SHIF)
	assert.True(t, resolved.SHIF.MinimumContribution.Equal(decimal.NewFromInt(300)))

	personal, ok := resolved.Relief(domain.ReliefPersonal)
	require.True(t, ok)
	assert.True(t, personal.Amount.Equal(decimal.NewFromInt(2400)))
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestFileValidate_RejectsTwoUnboundedBands(t *testing.T) {
	f := &File{
		TaxBands: []domain.TaxBand{
			{LowerLimit: d("0"), Rate: d("10"), EffectiveDate: day(2023, time.July, 1), Active: true},
			{LowerLimit: d("24001"), Rate: d("25"), EffectiveDate: day(2023, time.July, 1), Active: true},
		},
	}
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbounded")
}

func TestFileValidate_RejectsOverlappingBands(t *testing.T) {
	f := &File{
		TaxBands: []domain.TaxBand{
			{LowerLimit: d("0"), UpperLimit: dp("24000"), Rate: d("10"), EffectiveDate: day(2023, time.July, 1), Active: true},
			{LowerLimit: d("20000"), UpperLimit: dp("32333"), Rate: d("25"), EffectiveDate: day(2023, time.July, 1), Active: true},
			{LowerLimit: d("32334"), Rate: d("30"), EffectiveDate: day(2023, time.July, 1), Active: true},
		},
	}
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlaps")
}

func TestFileValidate_RejectsPersonalReliefWithoutAmount(t *testing.T) {
	f := &File{
		Reliefs: []domain.Relief{
			{Type: domain.ReliefPersonal, EffectiveDate: day(2023, time.July, 1), Active: true},
		},
	}
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "personal relief requires an amount")
}

func TestFileValidate_RejectsInvertedNSSFTier(t *testing.T) {
	f := &File{
		NSSFRates: []domain.NSSFRate{
			{Tier: 1, LowerLimit: d("7000"), UpperLimit: dp("100"), Rate: d("6"), EffectiveDate: day(2024, time.February, 1), Active: true},
		},
	}
	err := f.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upper limit must exceed lower limit")
}

func TestFileValidate_IgnoresInactiveBandGenerations(t *testing.T) {
	f := &File{
		TaxBands: []domain.TaxBand{
			// A retired generation with two unbounded bands must not trip
			// validation; only active bands are checked.
			{LowerLimit: d("0"), Rate: d("10"), EffectiveDate: day(2020, time.April, 25), Active: false},
			{LowerLimit: d("10000"), Rate: d("15"), EffectiveDate: day(2020, time.April, 25), Active: false},
			{LowerLimit: d("0"), Rate: d("10"), EffectiveDate: day(2023, time.July, 1), Active: true},
		},
	}
	assert.NoError(t, f.Validate())
}
