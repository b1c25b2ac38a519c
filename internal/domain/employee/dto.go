package employee

import (
	"fmt"

	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// maxTextLength matches the VARCHAR(100) name, department and position columns.
const maxTextLength = 100

type CreateEmployeeRequest struct {
	Name       string           `json:"name"`
	Department string           `json:"department"`
	Position   string           `json:"position"`
	Salary     *decimal.Decimal `json:"salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if validator.ExceedsLength(r.Name, maxTextLength) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	} else if validator.ExceedsLength(r.Department, maxTextLength) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must not exceed 100 characters"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	} else if validator.ExceedsLength(r.Position, maxTextLength) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position must not exceed 100 characters"})
	}
	if r.Salary == nil {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary is required"})
	} else if verr := validator.MoneyError("salary", *r.Salary); verr != nil {
		errs = append(errs, *verr)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name,omitempty"`
	Department *string          `json:"department,omitempty"`
	Position   *string          `json:"position,omitempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	optional := []struct {
		field string
		value *string
	}{
		{"name", r.Name},
		{"department", r.Department},
		{"position", r.Position},
	}
	for _, o := range optional {
		if o.value == nil {
			continue
		}
		if validator.IsEmpty(*o.value) {
			errs = append(errs, validator.ValidationError{Field: o.field, Message: o.field + " must not be empty"})
		} else if validator.ExceedsLength(*o.value, maxTextLength) {
			errs = append(errs, validator.ValidationError{Field: o.field, Message: fmt.Sprintf("%s must not exceed %d characters", o.field, maxTextLength)})
		}
	}
	if r.Salary != nil {
		if verr := validator.MoneyError("salary", *r.Salary); verr != nil {
			errs = append(errs, *verr)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Department *string
	Active     *bool
	Page       int
	Limit      int
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be at least 1"})
	}
	if f.Limit < 1 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f EmployeeFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type TransferRequest struct {
	EmployeeID    string `json:"-"`
	NewDepartment string `json:"new_department"`
}

func (r *TransferRequest) Validate() error {
	if validator.IsEmpty(r.NewDepartment) {
		return validator.ValidationErrors{{Field: "new_department", Message: "New department not provided"}}
	}
	if validator.ExceedsLength(r.NewDepartment, maxTextLength) {
		return validator.ValidationErrors{{Field: "new_department", Message: "new_department must not exceed 100 characters"}}
	}
	return nil
}

// ApprovalRequest carries the HR decision for a transfer or a permanent delete.
type ApprovalRequest struct {
	EmployeeID string `json:"-"`
	Approval   string `json:"approval"`
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Salary     string  `json:"salary"`
	Active     bool    `json:"active"`
	Archived   bool    `json:"archived"`
	Status     *string `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// SummaryResponse aggregates an employee's records across the ledger, reviews and attendance.
type SummaryResponse struct {
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	DaysPresent        int64   `json:"days_present"`
	LeaveDays          int64   `json:"leave_days"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
	ReviewCount        int64   `json:"review_count"`
	AverageRating      *string `json:"average_rating"`
	SalaryChanges      int64   `json:"salary_changes"`
}
