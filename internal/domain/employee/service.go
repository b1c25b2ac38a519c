package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee lifecycle
type EmployeeService interface {
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee soft deletes by archiving
	DeleteEmployee(ctx context.Context, id string) error

	RequestDepartmentTransfer(ctx context.Context, req TransferRequest) (EmployeeResponse, error)

	// ApproveTransfer returns the resulting status message ("Transfer approved" / "Transfer rejected")
	ApproveTransfer(ctx context.Context, req ApprovalRequest) (string, error)

	Deactivate(ctx context.Context, id string) (EmployeeResponse, error)
	Restore(ctx context.Context, id string) (EmployeeResponse, error)
	Archive(ctx context.Context, id string) (EmployeeResponse, error)
	Unarchive(ctx context.Context, id string) (EmployeeResponse, error)
	ListArchived(ctx context.Context) ([]EmployeeResponse, error)

	// PermanentlyDelete removes the employee and everything it owns
	PermanentlyDelete(ctx context.Context, req ApprovalRequest) (EmployeeResponse, error)

	Summary(ctx context.Context, id string) (SummaryResponse, error)
}
