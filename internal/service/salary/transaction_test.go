package salary

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/salary"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-workflow-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ledgerEmployeeID = "123e4567-e89b-12d3-a456-426614174000"

var ledgerEmployeeColumns = []string{"id", "name", "department", "position", "salary", "active", "archived", "status", "created_at", "updated_at"}

func newSQLSalaryService(t *testing.T) (pgxmock.PgxPoolIface, salary.SalaryService) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	db := database.New(mock)
	return mock, NewSalaryService(db, postgresql.NewEmployeeRepository(db), postgresql.NewSalaryHistoryRepository(db))
}

func expectLockedEmployee(mock pgxmock.PgxPoolIface, now time.Time) {
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1 FOR UPDATE")).
		WithArgs(ledgerEmployeeID).
		WillReturnRows(pgxmock.NewRows(ledgerEmployeeColumns).
			AddRow(ledgerEmployeeID, "Alice", "Engineering", "Engineer", "1000.00", true, false, nil, now, now))
}

func TestSalaryService_AdjustSalary_RollsBackLedgerWhenSalaryUpdateFails(t *testing.T) {
	mock, service := newSQLSalaryService(t)
	now := time.Now().UTC()
	updateErr := &pgconn.PgError{Code: "40P01", Message: "deadlock detected"}

	mock.ExpectBegin()
	expectLockedEmployee(mock, now)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO salary_histories (employee_id, previous_salary, new_salary)")).
		WithArgs(ledgerEmployeeID, "1000.00", "1200.00").
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "previous_salary", "new_salary", "changed_at"}).
			AddRow("sh-1", ledgerEmployeeID, "1000.00", "1200.00", now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE employees SET salary = $1")).
		WithArgs("1200.00", ledgerEmployeeID).
		WillReturnError(updateErr)
	mock.ExpectRollback()

	_, err := service.AdjustSalary(context.Background(), salary.AdjustSalaryRequest{
		EmployeeID: ledgerEmployeeID,
		NewSalary:  newSalary("1200"),
	})

	require.Error(t, err)
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryService_AdjustSalary_RollsBackWhenLedgerInsertFails(t *testing.T) {
	mock, service := newSQLSalaryService(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	expectLockedEmployee(mock, now)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO salary_histories")).
		WithArgs(ledgerEmployeeID, "1000.00", "1200.00").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := service.AdjustSalary(context.Background(), salary.AdjustSalaryRequest{
		EmployeeID: ledgerEmployeeID,
		NewSalary:  newSalary("1200"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create salary history")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryService_AdjustSalary_CommitsBothWrites(t *testing.T) {
	mock, service := newSQLSalaryService(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	expectLockedEmployee(mock, now)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO salary_histories")).
		WithArgs(ledgerEmployeeID, "1000.00", "1200.00").
		WillReturnRows(pgxmock.NewRows([]string{"id", "employee_id", "previous_salary", "new_salary", "changed_at"}).
			AddRow("sh-1", ledgerEmployeeID, "1000.00", "1200.00", now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE employees SET salary = $1")).
		WithArgs("1200.00", ledgerEmployeeID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	entry, err := service.AdjustSalary(context.Background(), salary.AdjustSalaryRequest{
		EmployeeID: ledgerEmployeeID,
		NewSalary:  newSalary("1200"),
	})

	require.NoError(t, err)
	assert.Equal(t, "1000.00", entry.PreviousSalary)
	assert.Equal(t, "1200.00", entry.NewSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}
