package domain

import (
	"github.com/shopspring/decimal"
)

// AllowableDeductions itemizes the caller-asserted amounts that reduce
// taxable income, after capping each at its configured maximum.
type AllowableDeductions struct {
	MortgageInterest      decimal.Decimal `json:"mortgage_interest"`
	PensionContribution   decimal.Decimal `json:"pension_contribution"`
	PostRetirementMedical decimal.Decimal `json:"post_retirement_medical"`
	Total                 decimal.Decimal `json:"total"`
}

// TaxReliefs itemizes amounts subtracted from computed tax liability.
type TaxReliefs struct {
	Personal  decimal.Decimal `json:"personal_relief"`
	Insurance decimal.Decimal `json:"insurance_relief"`
	Total     decimal.Decimal `json:"total"`
}

// PAYEResult is the full PAYE computation breakdown for one period.
type PAYEResult struct {
	TaxableIncome         decimal.Decimal     `json:"taxable_income"`
	AllowableDeductions   AllowableDeductions `json:"allowable_deductions"`
	IncomeAfterDeductions decimal.Decimal     `json:"income_after_deductions"`
	TaxBeforeRelief       decimal.Decimal     `json:"tax_before_relief"`
	Reliefs               TaxReliefs          `json:"tax_reliefs"`
	Tax                   decimal.Decimal     `json:"paye_tax"`
	EffectiveRate         decimal.Decimal     `json:"effective_tax_rate"`
	Warnings              []string            `json:"warnings,omitempty"`
}

// NSSFTierContribution is one tier's slice of the NSSF computation,
// kept for audit and reporting.
type NSSFTierContribution struct {
	Tier              int             `json:"tier"`
	PensionableAmount decimal.Decimal `json:"pensionable_amount"`
	Rate              decimal.Decimal `json:"rate"`
	Employee          decimal.Decimal `json:"employee_contribution"`
	Employer          decimal.Decimal `json:"employer_contribution"`
}

// NSSFResult is the tiered pension contribution breakdown. Applicable
// distinguishes "zero because exempt" from "zero because salary is zero".
type NSSFResult struct {
	GrossSalary     decimal.Decimal        `json:"gross_salary"`
	Tier1           decimal.Decimal        `json:"tier_1_contribution"`
	Tier2           decimal.Decimal        `json:"tier_2_contribution"`
	Employee        decimal.Decimal        `json:"employee_contribution"`
	Employer        decimal.Decimal        `json:"employer_contribution"`
	Total           decimal.Decimal        `json:"total_contribution"`
	Breakdown       []NSSFTierContribution `json:"contribution_breakdown,omitempty"`
	Applicable      bool                   `json:"applicable"`
	ExemptionReason string                 `json:"exemption_reason,omitempty"`
	Warnings        []string               `json:"warnings,omitempty"`
}

// SHIFResult reports the health levy. Calculated is the pre-floor value so
// reports can show whether the minimum was applied.
type SHIFResult struct {
	GrossSalary         decimal.Decimal `json:"gross_salary"`
	Contribution        decimal.Decimal `json:"shif_contribution"`
	Rate                decimal.Decimal `json:"contribution_rate"`
	MinimumContribution decimal.Decimal `json:"minimum_contribution"`
	Calculated          decimal.Decimal `json:"calculated_contribution"`
	Warnings            []string        `json:"warnings,omitempty"`
}

// HousingLevyResult reports the employee and employer housing levy.
type HousingLevyResult struct {
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	Employee        decimal.Decimal `json:"employee_contribution"`
	Employer        decimal.Decimal `json:"employer_contribution"`
	Total           decimal.Decimal `json:"total_contribution"`
	EmployeeRate    decimal.Decimal `json:"employee_rate"`
	EmployerRate    decimal.Decimal `json:"employer_rate"`
	Applicable      bool            `json:"applicable"`
	ExemptionReason string          `json:"exemption_reason,omitempty"`
	Warnings        []string        `json:"warnings,omitempty"`
}

// ComplianceResult is the outcome of validating computed deductions
// against employment-type rules. Compliant is false exactly when Errors
// is non-empty; warnings never affect it.
type ComplianceResult struct {
	Compliant      bool           `json:"is_compliant"`
	EmploymentType EmploymentType `json:"employment_type"`
	Errors         []string       `json:"errors"`
	Warnings       []string       `json:"warnings"`
}

// PayslipInput is everything the payslip engine needs for one employee
// in one period. Pointer fields are optional relief-eligible amounts.
type PayslipInput struct {
	EmploymentType EmploymentType `yaml:"employment_type" json:"employment_type"`

	BasicSalary            decimal.Decimal `yaml:"basic_salary" json:"basic_salary"`
	HouseAllowance         decimal.Decimal `yaml:"house_allowance" json:"house_allowance"`
	TransportAllowance     decimal.Decimal `yaml:"transport_allowance" json:"transport_allowance"`
	MedicalAllowance       decimal.Decimal `yaml:"medical_allowance" json:"medical_allowance"`
	LunchAllowance         decimal.Decimal `yaml:"lunch_allowance" json:"lunch_allowance"`
	CommunicationAllowance decimal.Decimal `yaml:"communication_allowance" json:"communication_allowance"`
	OtherAllowances        decimal.Decimal `yaml:"other_allowances" json:"other_allowances"`
	OvertimePay            decimal.Decimal `yaml:"overtime_pay" json:"overtime_pay"`
	Bonus                  decimal.Decimal `yaml:"bonus" json:"bonus"`

	InsurancePremiums     *decimal.Decimal `yaml:"insurance_premiums,omitempty" json:"insurance_premiums,omitempty"`
	MortgageInterest      *decimal.Decimal `yaml:"mortgage_interest,omitempty" json:"mortgage_interest,omitempty"`
	PensionContribution   *decimal.Decimal `yaml:"pension_contribution,omitempty" json:"pension_contribution,omitempty"`
	PostRetirementMedical *decimal.Decimal `yaml:"post_retirement_medical,omitempty" json:"post_retirement_medical,omitempty"`

	LoanDeductions    decimal.Decimal `yaml:"loan_deductions" json:"loan_deductions"`
	AdvanceDeductions decimal.Decimal `yaml:"advance_deductions" json:"advance_deductions"`
	OtherDeductions   decimal.Decimal `yaml:"other_deductions" json:"other_deductions"`
}

// GrossPay is basic salary plus all allowances, overtime and bonus.
func (in PayslipInput) GrossPay() decimal.Decimal {
	return in.BasicSalary.
		Add(in.HouseAllowance).
		Add(in.TransportAllowance).
		Add(in.MedicalAllowance).
		Add(in.LunchAllowance).
		Add(in.CommunicationAllowance).
		Add(in.OtherAllowances).
		Add(in.OvertimePay).
		Add(in.Bonus)
}

// Payslip is the composed gross-to-net result for one employee-period.
// Employer-side contributions are a cost to the employer, not a deduction
// from the employee, and are reported separately.
type Payslip struct {
	EmploymentType EmploymentType `json:"employment_type"`

	GrossPay      decimal.Decimal `json:"gross_pay"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`

	PAYE        PAYEResult        `json:"paye"`
	NSSF        NSSFResult        `json:"nssf"`
	SHIF        SHIFResult        `json:"shif"`
	HousingLevy HousingLevyResult `json:"housing_levy"`
	Compliance  ComplianceResult  `json:"compliance"`

	StatutoryDeductions decimal.Decimal `json:"statutory_deductions"`
	OtherDeductions     decimal.Decimal `json:"other_deductions"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	NetPay              decimal.Decimal `json:"net_pay"`

	EmployerNSSF        decimal.Decimal `json:"employer_nssf"`
	EmployerHousingLevy decimal.Decimal `json:"employer_housing_levy"`
	TotalEmployerCost   decimal.Decimal `json:"total_employer_cost"`

	Warnings []string `json:"warnings,omitempty"`
}
