package salary

import (
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AdjustSalaryRequest struct {
	EmployeeID string           `json:"-"`
	NewSalary  *decimal.Decimal `json:"new_salary"`
}

func (r *AdjustSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.NewSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "new_salary", Message: "New salary not provided"})
	} else if verr := validator.MoneyError("new_salary", *r.NewSalary); verr != nil {
		if !r.NewSalary.Round(validator.MoneyScale).IsPositive() {
			verr.Message = "New salary must be greater than zero."
		}
		errs = append(errs, *verr)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryHistoryResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee"`
	EmployeeName   string `json:"employee_name"`
	PreviousSalary string `json:"previous_salary"`
	NewSalary      string `json:"new_salary"`
	ChangedAt      string `json:"changed_at"`
}

type HistoryResponse struct {
	Message string                  `json:"-"`
	History []SalaryHistoryResponse `json:"history"`
}
