package salary

import "context"

type SalaryService interface {
	// GetHistory returns the ledger in chronological order
	GetHistory(ctx context.Context, employeeID string) (HistoryResponse, error)

	// AdjustSalary appends a ledger entry and updates the employee salary atomically
	AdjustSalary(ctx context.Context, req AdjustSalaryRequest) (SalaryHistoryResponse, error)
}
