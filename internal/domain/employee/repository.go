package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeRepository persists employees. GetByID and List only see employees that
// are not archived.
type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetAnyByID(ctx context.Context, id string) (Employee, error)
	// GetByIDForUpdate locks the employee row, archived or not, until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListArchived(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	UpdateSalary(ctx context.Context, id string, salary decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}
