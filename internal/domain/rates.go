package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxBand is one marginal band of the PAYE schedule. Bands for a given
// effective period are contiguous and non-overlapping when ordered by
// lower limit, and exactly one band has no upper limit (the top band).
type TaxBand struct {
	LowerLimit    decimal.Decimal  `yaml:"lower_limit" json:"lower_limit"`
	UpperLimit    *decimal.Decimal `yaml:"upper_limit,omitempty" json:"upper_limit,omitempty"`
	Rate          decimal.Decimal  `yaml:"rate" json:"rate"`
	EffectiveDate time.Time        `yaml:"effective_date" json:"effective_date"`
	Active        bool             `yaml:"active" json:"active"`
}

// Unbounded reports whether this is the open-ended top band.
func (b TaxBand) Unbounded() bool { return b.UpperLimit == nil }

// ReliefType identifies a tax relief category.
type ReliefType string

const (
	ReliefPersonal    ReliefType = "PERSONAL"
	ReliefInsurance   ReliefType = "INSURANCE"
	ReliefMortgage    ReliefType = "MORTGAGE"
	ReliefPension     ReliefType = "PENSION"
	ReliefMedicalFund ReliefType = "MEDICAL_FUND"
)

// Relief is a versioned relief parameter record. PERSONAL carries a flat
// Amount; INSURANCE carries a Rate plus an annual MaximumAmount cap;
// MORTGAGE, PENSION and MEDICAL_FUND carry only a monthly MaximumAmount
// cap on the caller-asserted deduction.
type Relief struct {
	Type          ReliefType       `yaml:"type" json:"type"`
	Amount        *decimal.Decimal `yaml:"amount,omitempty" json:"amount,omitempty"`
	Rate          *decimal.Decimal `yaml:"rate,omitempty" json:"rate,omitempty"`
	MaximumAmount *decimal.Decimal `yaml:"maximum_amount,omitempty" json:"maximum_amount,omitempty"`
	EffectiveDate time.Time        `yaml:"effective_date" json:"effective_date"`
	Active        bool             `yaml:"active" json:"active"`
}

// NSSFRate is one pension tier. Tier 1 covers [0, upper]; tier 2 covers
// the excess above tier 1's upper limit, so its lower limit is exclusive.
type NSSFRate struct {
	Tier          int              `yaml:"tier" json:"tier"`
	LowerLimit    decimal.Decimal  `yaml:"lower_limit" json:"lower_limit"`
	UpperLimit    *decimal.Decimal `yaml:"upper_limit,omitempty" json:"upper_limit,omitempty"`
	Rate          decimal.Decimal  `yaml:"rate" json:"rate"`
	EffectiveDate time.Time        `yaml:"effective_date" json:"effective_date"`
	Active        bool             `yaml:"active" json:"active"`
}

// SHIFRate is the health levy parameter set: a percentage of gross salary
// with a minimum monthly contribution.
type SHIFRate struct {
	Rate                decimal.Decimal `yaml:"rate" json:"rate"`
	MinimumContribution decimal.Decimal `yaml:"minimum_contribution" json:"minimum_contribution"`
	EffectiveDate       time.Time       `yaml:"effective_date" json:"effective_date"`
	Active              bool            `yaml:"active" json:"active"`
}

// HousingLevyRate carries independently configured employee and employer
// percentage rates.
type HousingLevyRate struct {
	EmployeeRate  decimal.Decimal `yaml:"employee_rate" json:"employee_rate"`
	EmployerRate  decimal.Decimal `yaml:"employer_rate" json:"employer_rate"`
	EffectiveDate time.Time       `yaml:"effective_date" json:"effective_date"`
	Active        bool            `yaml:"active" json:"active"`
}
