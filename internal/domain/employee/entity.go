package employee

import (
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	Name       string
	Department string
	Position   string
	Salary     decimal.Decimal
	Active     bool
	Archived   bool
	Status     *Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Status tracks the department transfer workflow.
type Status string

const (
	StatusPendingTransfer Status = "pending_transfer"
	StatusTransferred     Status = "transferred"
)

type Approval string

const (
	ApprovalApprove Approval = "approve"
	ApprovalReject  Approval = "reject"
)

// SalaryScale is the number of decimal places kept for every stored salary.
const SalaryScale = validator.MoneyScale

// RoundSalary rounds a salary the way it is persisted.
func RoundSalary(d decimal.Decimal) decimal.Decimal {
	return d.Round(SalaryScale)
}
