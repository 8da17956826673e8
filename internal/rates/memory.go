package rates

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"kenpay/internal/domain"
)

// StaticSource is an in-memory Source. It backs tests, the built-in
// default configuration, and YAML rate files.
type StaticSource struct {
	Bands       []domain.TaxBand
	ReliefList  []domain.Relief
	NSSFTiers   []domain.NSSFRate
	SHIFList    []domain.SHIFRate
	HousingList []domain.HousingLevyRate
}

func applicable(active bool, effective, asOf time.Time) bool {
	return active && !effective.After(asOf)
}

func (s *StaticSource) TaxBands(_ context.Context, asOf time.Time) ([]domain.TaxBand, error) {
	var out []domain.TaxBand
	for _, b := range s.Bands {
		if applicable(b.Active, b.EffectiveDate, asOf) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *StaticSource) Reliefs(_ context.Context, asOf time.Time) ([]domain.Relief, error) {
	var out []domain.Relief
	for _, r := range s.ReliefList {
		if applicable(r.Active, r.EffectiveDate, asOf) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *StaticSource) NSSFRates(_ context.Context, asOf time.Time) ([]domain.NSSFRate, error) {
	var out []domain.NSSFRate
	for _, r := range s.NSSFTiers {
		if applicable(r.Active, r.EffectiveDate, asOf) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *StaticSource) SHIFRates(_ context.Context, asOf time.Time) ([]domain.SHIFRate, error) {
	var out []domain.SHIFRate
	for _, r := range s.SHIFList {
		if applicable(r.Active, r.EffectiveDate, asOf) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *StaticSource) HousingLevyRates(_ context.Context, asOf time.Time) ([]domain.HousingLevyRate, error) {
	var out []domain.HousingLevyRate
	for _, r := range s.HousingList {
		if applicable(r.Active, r.EffectiveDate, asOf) {
			out = append(out, r)
		}
	}
	return out, nil
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

// DefaultSource returns the built-in Kenyan statutory configuration:
// the July 2023 PAYE schedule and reliefs, February 2024 NSSF limits,
// October 2024 SHIF, and the March 2024 Affordable Housing Levy.
// Superseded generations are kept (inactive, or older effective dates)
// so as-of resolution stays honest for historical dates.
func DefaultSource() *StaticSource {
	return &StaticSource{
		Bands: []domain.TaxBand{
			// Pre-July-2023 three-band schedule, retired.
			{LowerLimit: d("0"), UpperLimit: dp("24000"), Rate: d("10"), EffectiveDate: day(2020, time.April, 25), Active: false},
			{LowerLimit: d("24001"), UpperLimit: dp("32333"), Rate: d("25"), EffectiveDate: day(2020, time.April, 25), Active: false},
			{LowerLimit: d("32334"), Rate: d("30"), EffectiveDate: day(2020, time.April, 25), Active: false},

			{LowerLimit: d("0"), UpperLimit: dp("24000"), Rate: d("10"), EffectiveDate: day(2023, time.July, 1), Active: true},
			{LowerLimit: d("24001"), UpperLimit: dp("32333"), Rate: d("25"), EffectiveDate: day(2023, time.July, 1), Active: true},
			{LowerLimit: d("32334"), UpperLimit: dp("500000"), Rate: d("30"), EffectiveDate: day(2023, time.July, 1), Active: true},
			{LowerLimit: d("500001"), UpperLimit: dp("800000"), Rate: d("32.5"), EffectiveDate: day(2023, time.July, 1), Active: true},
			{LowerLimit: d("800001"), Rate: d("35"), EffectiveDate: day(2023, time.July, 1), Active: true},
		},
		ReliefList: []domain.Relief{
			{Type: domain.ReliefPersonal, Amount: dp("1408"), EffectiveDate: day(2018, time.January, 1), Active: true},
			{Type: domain.ReliefPersonal, Amount: dp("2400"), EffectiveDate: day(2020, time.April, 25), Active: true},
			// Insurance relief: 15% of annual premiums, capped per year.
			{Type: domain.ReliefInsurance, Rate: dp("15"), MaximumAmount: dp("60000"), EffectiveDate: day(2020, time.April, 25), Active: true},
			// Monthly caps on deductions from taxable income.
			{Type: domain.ReliefMortgage, MaximumAmount: dp("30000"), EffectiveDate: day(2023, time.July, 1), Active: true},
			{Type: domain.ReliefPension, MaximumAmount: dp("30000"), EffectiveDate: day(2023, time.July, 1), Active: true},
			{Type: domain.ReliefMedicalFund, MaximumAmount: dp("15000"), EffectiveDate: day(2023, time.July, 1), Active: true},
		},
		NSSFTiers: []domain.NSSFRate{
			// Year-two limits, superseded February 2024.
			{Tier: 1, LowerLimit: d("0"), UpperLimit: dp("6000"), Rate: d("6"), EffectiveDate: day(2023, time.February, 1), Active: false},
			{Tier: 2, LowerLimit: d("6000"), UpperLimit: dp("18000"), Rate: d("6"), EffectiveDate: day(2023, time.February, 1), Active: false},

			{Tier: 1, LowerLimit: d("0"), UpperLimit: dp("7000"), Rate: d("6"), EffectiveDate: day(2024, time.February, 1), Active: true},
			{Tier: 2, LowerLimit: d("7000"), UpperLimit: dp("36000"), Rate: d("6"), EffectiveDate: day(2024, time.February, 1), Active: true},
		},
		SHIFList: []domain.SHIFRate{
			{Rate: d("2.75"), MinimumContribution: d("300"), EffectiveDate: day(2024, time.October, 1), Active: true},
		},
		HousingList: []domain.HousingLevyRate{
			{EmployeeRate: d("1.5"), EmployerRate: d("1.5"), EffectiveDate: day(2024, time.March, 19), Active: true},
		},
	}
}
