package salary

import "context"

// SalaryHistoryRepository is append-only: there is no update and entries only
// disappear through the employee cascade.
type SalaryHistoryRepository interface {
	Create(ctx context.Context, entry SalaryHistory) (SalaryHistory, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]SalaryHistory, error)
	CountByEmployeeID(ctx context.Context, employeeID string) (int64, error)
}
