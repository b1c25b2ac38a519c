package salary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/salary"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-workflow-go/internal/repository/postgresql"
)

type SalaryServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	salaryRepo   salary.SalaryHistoryRepository
}

func NewSalaryService(db *database.DB, employeeRepo employee.EmployeeRepository, salaryRepo salary.SalaryHistoryRepository) salary.SalaryService {
	return &SalaryServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		salaryRepo:   salaryRepo,
	}
}

func mapHistoryToResponse(h salary.SalaryHistory) salary.SalaryHistoryResponse {
	return salary.SalaryHistoryResponse{
		ID:             h.ID,
		EmployeeID:     h.EmployeeID,
		EmployeeName:   h.EmployeeName,
		PreviousSalary: h.PreviousSalary.StringFixed(employee.SalaryScale),
		NewSalary:      h.NewSalary.StringFixed(employee.SalaryScale),
		ChangedAt:      h.ChangedAt.Format(time.RFC3339),
	}
}

// GetHistory implements salary.SalaryService.
func (s *SalaryServiceImpl) GetHistory(ctx context.Context, employeeID string) (salary.HistoryResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return salary.HistoryResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return salary.HistoryResponse{}, err
	}

	entries, err := s.salaryRepo.ListByEmployeeID(ctx, emp.ID)
	if err != nil {
		return salary.HistoryResponse{}, fmt.Errorf("failed to get salary history: %w", err)
	}

	resp := salary.HistoryResponse{History: make([]salary.SalaryHistoryResponse, 0, len(entries))}
	for _, h := range entries {
		resp.History = append(resp.History, mapHistoryToResponse(h))
	}
	if len(entries) == 0 {
		resp.Message = fmt.Sprintf("%s has no salary changes yet.", emp.Name)
	}
	return resp, nil
}

// AdjustSalary implements salary.SalaryService.
func (s *SalaryServiceImpl) AdjustSalary(ctx context.Context, req salary.AdjustSalaryRequest) (salary.SalaryHistoryResponse, error) {
	if !validator.IsValidUUID(req.EmployeeID) {
		return salary.SalaryHistoryResponse{}, employee.ErrEmployeeNotFound
	}
	if err := req.Validate(); err != nil {
		return salary.SalaryHistoryResponse{}, err
	}

	newSalary := employee.RoundSalary(*req.NewSalary)

	var entry salary.SalaryHistory
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByIDForUpdate(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}
		if emp.Archived {
			return employee.ErrEmployeeNotFound
		}

		entry, err = s.salaryRepo.Create(txCtx, salary.SalaryHistory{
			EmployeeID:     emp.ID,
			PreviousSalary: emp.Salary,
			NewSalary:      newSalary,
			EmployeeName:   emp.Name,
		})
		if err != nil {
			return err
		}

		return s.employeeRepo.UpdateSalary(txCtx, emp.ID, newSalary)
	})
	if err != nil {
		return salary.SalaryHistoryResponse{}, err
	}

	slog.Info("salary adjusted",
		"employee_id", entry.EmployeeID,
		"previous_salary", entry.PreviousSalary.StringFixed(employee.SalaryScale),
		"new_salary", entry.NewSalary.StringFixed(employee.SalaryScale),
	)
	return mapHistoryToResponse(entry), nil
}
