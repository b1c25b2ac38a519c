package employee

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/review"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/salary"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-workflow-go/internal/repository/memory"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type employeeTestEnv struct {
	mock    pgxmock.PgxPoolIface
	store   *memory.Store
	service employee.EmployeeService
}

func newEmployeeTestEnv(t *testing.T) *employeeTestEnv {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	store := memory.NewStore()
	service := NewEmployeeService(
		database.New(mock),
		store.Employees(),
		store.Salaries(),
		store.Reviews(),
		store.Attendance(),
	)
	return &employeeTestEnv{mock: mock, store: store, service: service}
}

func (e *employeeTestEnv) expectTx(commit bool) {
	e.mock.ExpectBegin()
	if commit {
		e.mock.ExpectCommit()
	} else {
		e.mock.ExpectRollback()
	}
}

func (e *employeeTestEnv) seed(name, department string) employee.Employee {
	return e.store.SeedEmployee(employee.Employee{
		Name:       name,
		Department: department,
		Position:   "Engineer",
		Salary:     decimal.RequireFromString("5000.00"),
		Active:     true,
	})
}

func salaryPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func TestEmployeeService_CreateEmployee(t *testing.T) {
	env := newEmployeeTestEnv(t)

	resp, err := env.service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name:       "  Alice  ",
		Department: "Engineering",
		Position:   "Backend",
		Salary:     salaryPtr("1234.567"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "1234.57", resp.Salary)
	assert.True(t, resp.Active)
	assert.False(t, resp.Archived)
	assert.Nil(t, resp.Status)
}

func TestEmployeeService_CreateEmployee_Validation(t *testing.T) {
	env := newEmployeeTestEnv(t)

	_, err := env.service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name:   "Bob",
		Salary: salaryPtr("-1"),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "department")
	assert.Contains(t, fields, "position")
	assert.Contains(t, fields, "salary")
}

func TestEmployeeService_ListEmployees(t *testing.T) {
	env := newEmployeeTestEnv(t)
	ctx := context.Background()

	env.seed("Charlie", "Sales")
	env.seed("Alice", "Engineering")
	bob := env.seed("Bob", "Engineering")
	archived := env.seed("Aaron", "Engineering")

	env.expectTx(true)
	_, err := env.service.Archive(ctx, archived.ID)
	require.NoError(t, err)

	env.expectTx(true)
	_, err = env.service.Deactivate(ctx, bob.ID)
	require.NoError(t, err)

	t.Run("ordered by name without archived", func(t *testing.T) {
		resp, err := env.service.ListEmployees(ctx, employee.EmployeeFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.TotalCount)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.Limit)
		assert.Equal(t, 1, resp.TotalPages)
		require.Len(t, resp.Employees, 3)
		assert.Equal(t, "Alice", resp.Employees[0].Name)
		assert.Equal(t, "Bob", resp.Employees[1].Name)
		assert.Equal(t, "Charlie", resp.Employees[2].Name)
	})

	t.Run("department and active filters", func(t *testing.T) {
		active := true
		resp, err := env.service.ListEmployees(ctx, employee.EmployeeFilter{
			Department: strPtr("Engineering"),
			Active:     &active,
		})
		require.NoError(t, err)
		require.Len(t, resp.Employees, 1)
		assert.Equal(t, "Alice", resp.Employees[0].Name)
	})

	t.Run("pagination", func(t *testing.T) {
		resp, err := env.service.ListEmployees(ctx, employee.EmployeeFilter{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalPages)
		require.Len(t, resp.Employees, 1)
		assert.Equal(t, "Charlie", resp.Employees[0].Name)
	})

	t.Run("limit out of range", func(t *testing.T) {
		_, err := env.service.ListEmployees(ctx, employee.EmployeeFilter{Limit: 500})
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})
}

func TestEmployeeService_GetEmployee(t *testing.T) {
	env := newEmployeeTestEnv(t)
	ctx := context.Background()
	alice := env.seed("Alice", "Engineering")

	resp, err := env.service.GetEmployee(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, resp.ID)

	_, err = env.service.GetEmployee(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = env.service.GetEmployee(ctx, "0b8a3c4e-1111-4a5b-9c6d-7e8f9a0b1c2d")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_UpdateEmployee_Partial(t *testing.T) {
	env := newEmployeeTestEnv(t)
	alice := env.seed("Alice", "Engineering")

	env.expectTx(true)
	resp, err := env.service.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:       alice.ID,
		Position: strPtr("Lead"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Lead", resp.Position)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "5000.00", resp.Salary)
}

func TestEmployeeService_UpdateEmployee_RejectsEmptyName(t *testing.T) {
	env := newEmployeeTestEnv(t)
	alice := env.seed("Alice", "Engineering")

	_, err := env.service.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ID:   alice.ID,
		Name: strPtr("   "),
	})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestEmployeeService_TransferWorkflow(t *testing.T) {
	env := newEmployeeTestEnv(t)
	ctx := context.Background()
	alice := env.seed("Alice", "Engineering")

	env.expectTx(true)
	resp, err := env.service.RequestDepartmentTransfer(ctx, employee.TransferRequest{
		EmployeeID:    alice.ID,
		NewDepartment: "Marketing",
	})
	require.NoError(t, err)
	assert.Equal(t, "Marketing", resp.Department)
	require.NotNil(t, resp.Status)
	assert.Equal(t, "pending_transfer", *resp.Status)

	env.expectTx(true)
	message, err := env.service.ApproveTransfer(ctx, employee.ApprovalRequest{EmployeeID: alice.ID, Approval: "reject"})
	require.NoError(t, err)
	assert.Equal(t, "Transfer rejected", message)

	stored, _ := env.store.EmployeeSnapshot(alice.ID)
	require.NotNil(t, stored.Status)
	assert.Equal(t, employee.StatusPendingTransfer, *stored.Status)
	assert.Equal(t, "Marketing", stored.Department)

	env.expectTx(true)
	message, err = env.service.ApproveTransfer(ctx, employee.ApprovalRequest{EmployeeID: alice.ID, Approval: "approve"})
	require.NoError(t, err)
	assert.Equal(t, "Transfer approved", message)

	stored, _ = env.store.EmployeeSnapshot(alice.ID)
	assert.Equal(t, employee.StatusTransferred, *stored.Status)
}

func TestEmployeeService_RequestTransfer_MissingDepartment(t *testing.T) {
	env := newEmployeeTestEnv(t)
	alice := env.seed("Alice", "Engineering")

	env.expectTx(false)
	_, err := env.service.RequestDepartmentTransfer(context.Background(), employee.TransferRequest{EmployeeID: alice.ID})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "New department not provided", verrs.ToMap()["new_department"])
}

func TestEmployeeService_ApproveTransfer_InvalidApproval(t *testing.T) {
	env := newEmployeeTestEnv(t)
	alice := env.seed("Alice", "Engineering")

	env.expectTx(false)
	_, err := env.service.ApproveTransfer(context.Background(), employee.ApprovalRequest{EmployeeID: alice.ID, Approval: "maybe"})

	assert.ErrorIs(t, err, employee.ErrInvalidApprovalStatus)
}

func TestEmployeeService_ApproveTransfer_UnknownEmployee(t *testing.T) {
	env := newEmployeeTestEnv(t)

	env.expectTx(false)
	_, err := env.service.ApproveTransfer(context.Background(), employee.ApprovalRequest{
		EmployeeID: "0b8a3c4e-1111-4a5b-9c6d-7e8f9a0b1c2d",
		Approval:   "approve",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_DeactivateRestore(t *testing.T) {
	env := newEmployeeTestEnv(t)
	ctx := context.Background()
	alice := env.seed("Alice", "Engineering")

	env.expectTx(true)
	resp, err := env.service.Deactivate(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, resp.Active)

	env.expectTx(true)
	resp, err = env.service.Restore(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, resp.Active)
}

func TestEmployeeService_ArchiveLifecycle(t *testing.T) {
	env := newEmployeeTestEnv(t)
	ctx := context.Background()
	alice := env.seed("Alice", "Engineering")

	env.expectTx(false)
	_, err := env.service.Unarchive(ctx, alice.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotArchived)

	env.expectTx(true)
	require.NoError(t, env.service.DeleteEmployee(ctx, alice.ID))

	archived, err := env.service.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.True(t, archived[0].Archived)

	// archived employees are still readable by id
	got, err := env.service.GetEmployee(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived)

	list, err := env.service.ListEmployees(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Empty(t, list.Employees)

	env.expectTx(true)
	resp, err := env.service.Unarchive(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, resp.Archived)
}

func TestEmployeeService_PermanentlyDelete(t *testing.T) {
	env := newEmployeeTestEnv(t)
	ctx := context.Background()
	alice := env.seed("Alice", "Engineering")

	_, err := env.store.Reviews().Create(ctx, review.PerformanceReview{EmployeeID: alice.ID, Review: "ok", Rating: 7})
	require.NoError(t, err)
	env.store.SeedAttendance(attendance.Attendance{
		EmployeeID: alice.ID,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	})

	t.Run("requires approval", func(t *testing.T) {
		env.expectTx(false)
		_, err := env.service.PermanentlyDelete(ctx, employee.ApprovalRequest{EmployeeID: alice.ID, Approval: "reject"})
		assert.ErrorIs(t, err, employee.ErrApprovalRequired)

		_, ok := env.store.EmployeeSnapshot(alice.ID)
		assert.True(t, ok)
	})

	t.Run("approved cascades", func(t *testing.T) {
		env.expectTx(true)
		resp, err := env.service.PermanentlyDelete(ctx, employee.ApprovalRequest{EmployeeID: alice.ID, Approval: "approve"})
		require.NoError(t, err)
		assert.Equal(t, "Alice", resp.Name)

		_, ok := env.store.EmployeeSnapshot(alice.ID)
		assert.False(t, ok)
		assert.Zero(t, env.store.AttendanceCount())

		reviews, err := env.store.Reviews().ListByEmployeeID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})
}

func TestEmployeeService_Summary(t *testing.T) {
	env := newEmployeeTestEnv(t)
	ctx := context.Background()
	alice := env.seed("Alice", "Engineering")

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	for d, status := range map[int]attendance.Status{
		1: attendance.StatusPresent,
		2: attendance.StatusLate,
		3: attendance.StatusAbsent,
		4: attendance.StatusLeave,
		5: attendance.StatusOnLeave,
		6: attendance.StatusLeaveRequested,
	} {
		env.store.SeedAttendance(attendance.Attendance{
			EmployeeID:    alice.ID,
			Date:          day(d),
			Status:        status,
			OvertimeHours: 1.25,
		})
	}

	for _, rating := range []int{7, 8} {
		_, err := env.store.Reviews().Create(ctx, review.PerformanceReview{EmployeeID: alice.ID, Review: "fine", Rating: rating})
		require.NoError(t, err)
	}
	_, err := env.store.Salaries().Create(ctx, salary.SalaryHistory{
		EmployeeID:     alice.ID,
		PreviousSalary: decimal.RequireFromString("5000"),
		NewSalary:      decimal.RequireFromString("6000"),
	})
	require.NoError(t, err)

	summary, err := env.service.Summary(ctx, alice.ID)
	require.NoError(t, err)

	assert.Equal(t, "Alice", summary.EmployeeName)
	assert.Equal(t, int64(2), summary.DaysPresent)
	assert.Equal(t, int64(2), summary.LeaveDays)
	assert.InDelta(t, 7.5, summary.TotalOvertimeHours, 0.001)
	assert.Equal(t, int64(2), summary.ReviewCount)
	require.NotNil(t, summary.AverageRating)
	assert.Equal(t, "7.50", *summary.AverageRating)
	assert.Equal(t, int64(1), summary.SalaryChanges)
}

func TestEmployeeService_Summary_NoReviews(t *testing.T) {
	env := newEmployeeTestEnv(t)
	alice := env.seed("Alice", "Engineering")

	summary, err := env.service.Summary(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Nil(t, summary.AverageRating)
	assert.Zero(t, summary.DaysPresent)
}
