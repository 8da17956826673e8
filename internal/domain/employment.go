package domain

import "fmt"

// EmploymentType classifies an employee for statutory exemption purposes.
type EmploymentType string

const (
	EmploymentPermanent EmploymentType = "PERMANENT"
	EmploymentContract  EmploymentType = "CONTRACT"
	EmploymentCasual    EmploymentType = "CASUAL"
	EmploymentIntern    EmploymentType = "INTERN"
)

// ParseEmploymentType validates a raw employment type string.
func ParseEmploymentType(s string) (EmploymentType, error) {
	switch EmploymentType(s) {
	case EmploymentPermanent, EmploymentContract, EmploymentCasual, EmploymentIntern:
		return EmploymentType(s), nil
	}
	return "", fmt.Errorf("unknown employment type %q", s)
}

// Valid reports whether et is one of the known employment types.
func (et EmploymentType) Valid() bool {
	_, err := ParseEmploymentType(string(et))
	return err == nil
}

// Deduction identifies a statutory deduction kind for exemption lookups.
type Deduction string

const (
	DeductionNSSF        Deduction = "NSSF"
	DeductionSHIF        Deduction = "SHIF"
	DeductionHousingLevy Deduction = "HOUSING_LEVY"
	DeductionPAYE        Deduction = "PAYE"
)

// exemptions is the single place employment-type exemption rules live.
// Contract employees are exempt from NSSF and the Housing Levy; SHIF and
// PAYE apply to every employment type.
var exemptions = map[Deduction]map[EmploymentType]bool{
	DeductionNSSF:        {EmploymentContract: true},
	DeductionHousingLevy: {EmploymentContract: true},
}

// IsExempt reports whether the employment type is exempt from a deduction.
// An empty employment type means "unspecified" and is never exempt.
func IsExempt(d Deduction, et EmploymentType) bool {
	return exemptions[d][et]
}
