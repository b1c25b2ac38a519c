package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryHistory is one immutable entry of the salary ledger.
type SalaryHistory struct {
	ID             string
	EmployeeID     string
	PreviousSalary decimal.Decimal
	NewSalary      decimal.Decimal
	ChangedAt      time.Time

	// DTO
	EmployeeName string
}
