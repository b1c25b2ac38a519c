package employee

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/review"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/salary"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-workflow-go/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	salaryRepo     salary.SalaryHistoryRepository
	reviewRepo     review.ReviewRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	salaryRepo salary.SalaryHistoryRepository,
	reviewRepo review.ReviewRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		salaryRepo:     salaryRepo,
		reviewRepo:     reviewRepo,
		attendanceRepo: attendanceRepo,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	var status *string
	if emp.Status != nil {
		s := string(*emp.Status)
		status = &s
	}

	return employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Department: emp.Department,
		Position:   emp.Position,
		Salary:     emp.Salary.StringFixed(employee.SalaryScale),
		Active:     emp.Active,
		Archived:   emp.Archived,
		Status:     status,
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  emp.UpdatedAt.Format(time.RFC3339),
	}
}

func mapEmployeesToResponse(emps []employee.Employee) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	emps, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return employee.ListEmployeeResponse{
		Employees:  mapEmployeesToResponse(emps),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// GetEmployee returns the employee whether or not it is archived.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetAnyByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:       strings.TrimSpace(req.Name),
		Department: strings.TrimSpace(req.Department),
		Position:   strings.TrimSpace(req.Position),
		Salary:     employee.RoundSalary(*req.Salary),
		Active:     true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "department", created.Department)
	return mapEmployeeToResponse(created), nil
}

// mutate locks the employee row, applies fn and writes the result back in one transaction.
func (s *EmployeeServiceImpl) mutate(ctx context.Context, id string, fn func(emp *employee.Employee) error) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	var updated employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := fn(&emp); err != nil {
			return err
		}
		updated, err = s.employeeRepo.Update(txCtx, emp)
		return err
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(req.ID) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.mutate(ctx, req.ID, func(emp *employee.Employee) error {
		if req.Name != nil {
			emp.Name = strings.TrimSpace(*req.Name)
		}
		if req.Department != nil {
			emp.Department = strings.TrimSpace(*req.Department)
		}
		if req.Position != nil {
			emp.Position = strings.TrimSpace(*req.Position)
		}
		if req.Salary != nil {
			emp.Salary = employee.RoundSalary(*req.Salary)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	_, err := s.Archive(ctx, id)
	return err
}

// RequestDepartmentTransfer implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RequestDepartmentTransfer(ctx context.Context, req employee.TransferRequest) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(req.EmployeeID) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	updated, err := s.mutate(ctx, req.EmployeeID, func(emp *employee.Employee) error {
		if err := req.Validate(); err != nil {
			return err
		}
		status := employee.StatusPendingTransfer
		emp.Department = strings.TrimSpace(req.NewDepartment)
		emp.Status = &status
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("department transfer requested", "employee_id", updated.ID, "department", updated.Department)
	return mapEmployeeToResponse(updated), nil
}

// ApproveTransfer implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ApproveTransfer(ctx context.Context, req employee.ApprovalRequest) (string, error) {
	if !validator.IsValidUUID(req.EmployeeID) {
		return "", employee.ErrEmployeeNotFound
	}

	var message string
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByIDForUpdate(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		switch employee.Approval(req.Approval) {
		case employee.ApprovalApprove:
			status := employee.StatusTransferred
			emp.Status = &status
			if _, err := s.employeeRepo.Update(txCtx, emp); err != nil {
				return err
			}
			message = "Transfer approved"
		case employee.ApprovalReject:
			message = "Transfer rejected"
		default:
			return employee.ErrInvalidApprovalStatus
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	slog.Info("department transfer decided", "employee_id", req.EmployeeID, "approval", req.Approval)
	return message, nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	updated, err := s.mutate(ctx, id, func(emp *employee.Employee) error {
		emp.Active = false
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated), nil
}

// Restore implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Restore(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	updated, err := s.mutate(ctx, id, func(emp *employee.Employee) error {
		emp.Active = true
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated), nil
}

// Archive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Archive(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	updated, err := s.mutate(ctx, id, func(emp *employee.Employee) error {
		emp.Archived = true
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee archived", "employee_id", updated.ID)
	return mapEmployeeToResponse(updated), nil
}

// Unarchive fails with a NotArchivedError and leaves the row untouched when it is not archived.
func (s *EmployeeServiceImpl) Unarchive(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	updated, err := s.mutate(ctx, id, func(emp *employee.Employee) error {
		if !emp.Archived {
			return &employee.NotArchivedError{Name: emp.Name}
		}
		emp.Archived = false
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee unarchived", "employee_id", updated.ID)
	return mapEmployeeToResponse(updated), nil
}

// ListArchived implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListArchived(ctx context.Context) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.ListArchived(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived employees: %w", err)
	}
	return mapEmployeesToResponse(emps), nil
}

// PermanentlyDelete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) PermanentlyDelete(ctx context.Context, req employee.ApprovalRequest) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(req.EmployeeID) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	var deleted employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByIDForUpdate(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}
		if employee.Approval(req.Approval) != employee.ApprovalApprove {
			return employee.ErrApprovalRequired
		}
		if err := s.employeeRepo.Delete(txCtx, emp.ID); err != nil {
			return err
		}
		deleted = emp
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee permanently deleted", "employee_id", deleted.ID)
	return mapEmployeeToResponse(deleted), nil
}

// Summary aggregates the ledger, reviews and attendance of a non-archived employee.
// The queries run concurrently outside any transaction.
func (s *EmployeeServiceImpl) Summary(ctx context.Context, id string) (employee.SummaryResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.SummaryResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.SummaryResponse{}, err
	}

	var (
		counts        map[attendance.Status]int64
		overtime      float64
		stats         review.ReviewStats
		salaryChanges int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		counts, err = s.attendanceRepo.CountByStatus(gCtx, id)
		return err
	})

	g.Go(func() error {
		var err error
		overtime, err = s.attendanceRepo.SumOvertimeHours(gCtx, id)
		return err
	})

	g.Go(func() error {
		var err error
		stats, err = s.reviewRepo.Stats(gCtx, id)
		return err
	})

	g.Go(func() error {
		var err error
		salaryChanges, err = s.salaryRepo.CountByEmployeeID(gCtx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return employee.SummaryResponse{}, fmt.Errorf("failed to build employee summary: %w", err)
	}

	summary := employee.SummaryResponse{
		EmployeeID:         emp.ID,
		EmployeeName:       emp.Name,
		DaysPresent:        counts[attendance.StatusPresent] + counts[attendance.StatusLate],
		LeaveDays:          counts[attendance.StatusLeave] + counts[attendance.StatusOnLeave],
		TotalOvertimeHours: overtime,
		ReviewCount:        stats.Count,
		SalaryChanges:      salaryChanges,
	}
	if stats.AverageRating != nil {
		avg := stats.AverageRating.StringFixed(2)
		summary.AverageRating = &avg
	}
	return summary, nil
}
