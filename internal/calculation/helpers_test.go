package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"kenpay/internal/rates"
)

var testAsOf = time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

func testRates(t *testing.T) *rates.Resolved {
	t.Helper()
	repo := rates.NewRepository(rates.DefaultSource())
	resolved, err := repo.Resolve(context.Background(), testAsOf)
	require.NoError(t, err)
	return resolved
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	require.True(t, got.Equal(dec(want)), "got %s, want %s (%v)", got, want, msgAndArgs)
}
