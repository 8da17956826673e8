package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kenpay/internal/domain"
)

// ValidateCompliance cross-checks computed employee-side NSSF and Housing
// Levy contributions against the employment-type rules. It performs no
// calculation itself: it is a pure predicate over numbers produced by the
// calculators, so the legal rules can be audited independently of the
// arithmetic. Compliant is false exactly when Errors is non-empty.
func ValidateCompliance(employmentType domain.EmploymentType, nssfContribution, housingLevyContribution decimal.Decimal) (*domain.ComplianceResult, error) {
	if !employmentType.Valid() {
		return nil, fmt.Errorf("unknown employment type %q", employmentType)
	}

	result := &domain.ComplianceResult{
		Compliant:      true,
		EmploymentType: employmentType,
		Errors:         []string{},
		Warnings:       []string{},
	}

	checkMandatory := func(d domain.Deduction, label string, contribution decimal.Decimal) {
		if domain.IsExempt(d, employmentType) {
			if contribution.IsPositive() {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"contract employees should not have %s deductions; only SHIF is mandatory for contract employees", label))
			}
			return
		}
		if !contribution.IsPositive() {
			result.Compliant = false
			result.Errors = append(result.Errors, fmt.Sprintf(
				"%s contribution is mandatory for %s employees but is missing", label, employmentType))
		}
	}

	checkMandatory(domain.DeductionNSSF, "NSSF", nssfContribution)
	checkMandatory(domain.DeductionHousingLevy, "Housing Levy", housingLevyContribution)

	// Casual workers are a recurring source of wrong exemption assumptions,
	// so surface the reminder even though the mandatory check above already
	// caught the miss.
	if employmentType == domain.EmploymentCasual &&
		(!nssfContribution.IsPositive() || !housingLevyContribution.IsPositive()) {
		result.Warnings = append(result.Warnings,
			"REMINDER: both NSSF and Housing Levy are mandatory for casual workers under the NSSF Act 2013 and the Housing Levy regulations")
	}

	if employmentType == domain.EmploymentContract {
		result.Warnings = append(result.Warnings,
			"contract employee: only SHIF deductions apply; NSSF and Housing Levy are not deducted")
	}

	return result, nil
}
