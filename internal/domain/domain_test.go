package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoney_HalfUp(t *testing.T) {
	cases := map[string]string{
		"1.005":   "1.01",
		"1.004":   "1.00",
		"420.0":   "420",
		"274.995": "275",
		"0":       "0",
	}
	for in, want := range cases {
		got := RoundMoney(decimal.RequireFromString(in))
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "RoundMoney(%s) = %s, want %s", in, got, want)
	}
}

func TestPercentOf(t *testing.T) {
	got := PercentOf(decimal.NewFromInt(20000), decimal.NewFromInt(10))
	assert.True(t, got.Equal(decimal.NewFromInt(2000)), "10%% of 20000 should be 2000, got %s", got)

	got = PercentOf(decimal.NewFromInt(10000), decimal.RequireFromString("2.75"))
	assert.True(t, got.Equal(decimal.NewFromInt(275)), "2.75%% of 10000 should be 275, got %s", got)
}

func TestParseEmploymentType(t *testing.T) {
	for _, valid := range []string{"PERMANENT", "CONTRACT", "CASUAL", "INTERN"} {
		et, err := ParseEmploymentType(valid)
		assert.NoError(t, err)
		assert.Equal(t, EmploymentType(valid), et)
	}

	_, err := ParseEmploymentType("FREELANCE")
	assert.Error(t, err, "Should reject unknown employment type")

	_, err = ParseEmploymentType("")
	assert.Error(t, err, "Should reject empty employment type")
}

func TestIsExempt_ContractOnly(t *testing.T) {
	all := []EmploymentType{EmploymentPermanent, EmploymentContract, EmploymentCasual, EmploymentIntern}

	for _, et := range all {
		wantExempt := et == EmploymentContract
		assert.Equal(t, wantExempt, IsExempt(DeductionNSSF, et), "NSSF exemption for %s", et)
		assert.Equal(t, wantExempt, IsExempt(DeductionHousingLevy, et), "Housing Levy exemption for %s", et)
		assert.False(t, IsExempt(DeductionSHIF, et), "SHIF applies to %s unconditionally", et)
		assert.False(t, IsExempt(DeductionPAYE, et), "PAYE applies to %s unconditionally", et)
	}

	assert.False(t, IsExempt(DeductionNSSF, ""), "Unspecified employment type is never exempt")
}

func TestPayslipInput_GrossPay(t *testing.T) {
	in := PayslipInput{
		BasicSalary:        decimal.NewFromInt(50000),
		HouseAllowance:     decimal.NewFromInt(10000),
		TransportAllowance: decimal.NewFromInt(5000),
		OvertimePay:        decimal.NewFromInt(2500),
		Bonus:              decimal.NewFromInt(1000),
	}
	assert.True(t, in.GrossPay().Equal(decimal.NewFromInt(68500)))
}
