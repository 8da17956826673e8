package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenpay/internal/domain"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBatchInput(t *testing.T) {
	path := writeInput(t, `
as_of: 2025-06-30T00:00:00Z
employees:
  - payroll_number: EMP-001
    name: Wanjiku Kamau
    employment_type: PERMANENT
    basic_salary: "50000"
    house_allowance: "8000"
  - payroll_number: EMP-002
    name: Otieno Ochieng
    employment_type: CASUAL
    basic_salary: "20000"
`)

	input, err := LoadBatchInput(path)
	require.NoError(t, err)

	assert.Equal(t, 2025, input.AsOf.Year())
	require.Len(t, input.Employees, 2)

	first := input.Employees[0]
	assert.Equal(t, "EMP-001", first.PayrollNumber)
	assert.Equal(t, domain.EmploymentPermanent, first.Input.EmploymentType)
	assert.Equal(t, "50000", first.Input.BasicSalary.String())
	assert.Equal(t, "58000", first.Input.GrossPay().String())
	assert.NotEqual(t, uuid.Nil, first.ID, "Missing IDs are assigned")
	assert.NotEqual(t, input.Employees[0].ID, input.Employees[1].ID)
}

func TestLoadBatchInput_MissingFile(t *testing.T) {
	_, err := LoadBatchInput(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadBatchInput_Invalid(t *testing.T) {
	cases := map[string]string{
		"no employees": `
as_of: 2025-06-30T00:00:00Z
employees: []
`,
		"missing payroll number": `
employees:
  - name: Nameless
    employment_type: PERMANENT
    basic_salary: "50000"
`,
		"duplicate payroll number": `
employees:
  - payroll_number: EMP-001
    employment_type: PERMANENT
    basic_salary: "50000"
  - payroll_number: EMP-001
    employment_type: CASUAL
    basic_salary: "20000"
`,
		"bad employment type": `
employees:
  - payroll_number: EMP-001
    employment_type: FREELANCE
    basic_salary: "50000"
`,
		"negative basic salary": `
employees:
  - payroll_number: EMP-001
    employment_type: PERMANENT
    basic_salary: "-1"
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadBatchInput(writeInput(t, content))
			assert.Error(t, err)
		})
	}
}
