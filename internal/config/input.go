package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"kenpay/internal/batch"
	"kenpay/internal/domain"
)

// BatchInput is the on-disk shape of a payroll run: the as-of date and
// one entry per employee.
type BatchInput struct {
	AsOf      time.Time        `yaml:"as_of"`
	Employees []batch.Employee `yaml:"employees"`
}

// LoadBatchInput reads and validates a batch-input YAML file. Employees
// without an ID are assigned one; every entry must carry a payroll number
// and a valid employment type, and no payroll number may repeat.
func LoadBatchInput(path string) (*BatchInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch input %s: %w", path, err)
	}

	var input BatchInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse batch input %s: %w", path, err)
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("batch input %s: %w", path, err)
	}
	return &input, nil
}

// Validate checks every employee entry and fills in missing IDs.
func (b *BatchInput) Validate() error {
	if len(b.Employees) == 0 {
		return fmt.Errorf("no employees provided")
	}

	seen := make(map[string]bool, len(b.Employees))
	for i := range b.Employees {
		emp := &b.Employees[i]
		if emp.PayrollNumber == "" {
			return fmt.Errorf("employee %d: payroll number is required", i)
		}
		if seen[emp.PayrollNumber] {
			return fmt.Errorf("employee %d: duplicate payroll number %q", i, emp.PayrollNumber)
		}
		seen[emp.PayrollNumber] = true

		if _, err := domain.ParseEmploymentType(string(emp.Input.EmploymentType)); err != nil {
			return fmt.Errorf("employee %s: %w", emp.PayrollNumber, err)
		}
		if emp.Input.BasicSalary.IsNegative() {
			return fmt.Errorf("employee %s: basic salary must not be negative", emp.PayrollNumber)
		}
		if emp.ID == uuid.Nil {
			emp.ID = uuid.New()
		}
	}
	return nil
}
