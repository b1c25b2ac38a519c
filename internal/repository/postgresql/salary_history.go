package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/salary"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/database"
)

type salaryHistoryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryHistoryRepository(db *database.DB) salary.SalaryHistoryRepository {
	return &salaryHistoryRepositoryImpl{db: db}
}

// Create implements salary.SalaryHistoryRepository.
func (r *salaryHistoryRepositoryImpl) Create(ctx context.Context, entry salary.SalaryHistory) (salary.SalaryHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_histories (employee_id, previous_salary, new_salary)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, previous_salary, new_salary, changed_at
	`

	var created salary.SalaryHistory
	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.PreviousSalary.StringFixed(employee.SalaryScale),
		entry.NewSalary.StringFixed(employee.SalaryScale),
	).Scan(&created.ID, &created.EmployeeID, &created.PreviousSalary, &created.NewSalary, &created.ChangedAt)
	if err != nil {
		return salary.SalaryHistory{}, fmt.Errorf("failed to create salary history: %w", err)
	}
	created.EmployeeName = entry.EmployeeName
	return created, nil
}

// ListByEmployeeID returns the ledger oldest first.
func (r *salaryHistoryRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]salary.SalaryHistory, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sh.id, sh.employee_id, e.name, sh.previous_salary, sh.new_salary, sh.changed_at
		FROM salary_histories sh
		JOIN employees e ON e.id = sh.employee_id
		WHERE sh.employee_id = $1
		ORDER BY sh.changed_at, sh.id
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary history: %w", err)
	}
	defer rows.Close()

	history := make([]salary.SalaryHistory, 0)
	for rows.Next() {
		var h salary.SalaryHistory
		if err := rows.Scan(&h.ID, &h.EmployeeID, &h.EmployeeName, &h.PreviousSalary, &h.NewSalary, &h.ChangedAt); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// CountByEmployeeID implements salary.SalaryHistoryRepository.
func (r *salaryHistoryRepositoryImpl) CountByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM salary_histories WHERE employee_id = $1`, employeeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count salary history: %w", err)
	}
	return count, nil
}
