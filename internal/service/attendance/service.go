package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-workflow-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	location       *time.Location
	now            func() time.Time
}

// NewAttendanceService creates an attendance service; "today" is evaluated in loc.
func NewAttendanceService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		location:       loc,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) today() (time.Time, time.Time) {
	now := s.now().In(s.location)
	return now, attendance.DateOf(now)
}

// lockEmployee takes the employee row lock; archived employees are treated as missing.
func (s *AttendanceServiceImpl) lockEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.Archived {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *AttendanceServiceImpl) activeEmployee(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *AttendanceServiceImpl) mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		EmployeeName:  att.EmployeeName,
		Date:          att.Date.Format(validator.DateLayout),
		Status:        string(att.Status),
		OvertimeHours: att.OvertimeHours,
	}
	if att.CheckInTime != nil {
		v := att.CheckInTime.In(s.location).Format(time.RFC3339)
		resp.CheckInTime = &v
	}
	if att.CheckOutTime != nil {
		v := att.CheckOutTime.In(s.location).Format(time.RFC3339)
		resp.CheckOutTime = &v
	}
	return resp
}

func (s *AttendanceServiceImpl) mapAttendancesToResponse(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, s.mapAttendanceToResponse(att))
	}
	return responses
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	var created attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.lockEmployee(txCtx, employeeID)
		if err != nil {
			return err
		}

		now, today := s.today()
		_, err = s.attendanceRepo.GetByEmployeeAndDate(txCtx, emp.ID, today)
		if err == nil {
			return attendance.ErrAlreadyCheckedIn
		}
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return err
		}

		created, err = s.attendanceRepo.Create(txCtx, attendance.Attendance{
			EmployeeID:  emp.ID,
			Date:        today,
			Status:      attendance.StatusPresent,
			CheckInTime: &now,
		})
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceAlreadyRecorded) {
				return attendance.ErrAlreadyCheckedIn
			}
			return err
		}
		created.EmployeeName = &emp.Name
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("employee checked in", "employee_id", employeeID, "date", created.Date.Format(validator.DateLayout))
	return s.mapAttendanceToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	var updated attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.lockEmployee(txCtx, employeeID)
		if err != nil {
			return err
		}

		now, today := s.today()
		record, err := s.attendanceRepo.GetByEmployeeAndDate(txCtx, emp.ID, today)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return attendance.ErrNoCheckInRecord
			}
			return err
		}
		if !record.HasCheckedIn() {
			return attendance.ErrNoCheckInRecord
		}
		if record.HasCheckedOut() {
			return attendance.ErrAlreadyCheckedOut
		}

		overtime := attendance.OvertimeHours(*record.CheckInTime, now)
		updated, err = s.attendanceRepo.UpdateCheckOut(txCtx, record.ID, now, overtime)
		if err != nil {
			return err
		}
		updated.EmployeeName = &emp.Name
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("employee checked out", "employee_id", employeeID, "overtime_hours", updated.OvertimeHours)
	return s.mapAttendanceToResponse(updated), nil
}

// OvertimeTotal implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) OvertimeTotal(ctx context.Context, employeeID string) (attendance.OvertimeResponse, error) {
	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return attendance.OvertimeResponse{}, err
	}

	total, err := s.attendanceRepo.SumOvertimeHours(ctx, emp.ID)
	if err != nil {
		return attendance.OvertimeResponse{}, fmt.Errorf("failed to get overtime hours: %w", err)
	}
	return attendance.OvertimeResponse{EmployeeID: emp.ID, TotalOvertimeHours: total}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployeeID(ctx, emp.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return s.mapAttendancesToResponse(records), nil
}

// RequestLeave implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RequestLeave(ctx context.Context, req attendance.LeaveRequest) (attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(req.EmployeeID) {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var created attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.lockEmployee(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		created, err = s.attendanceRepo.Create(txCtx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       req.ParsedDate(),
			Status:     attendance.StatusLeaveRequested,
		})
		if err != nil {
			return err
		}
		created.EmployeeName = &emp.Name
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.Info("leave requested", "employee_id", req.EmployeeID, "date", req.Date)
	return s.mapAttendanceToResponse(created), nil
}

// ApproveLeave implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ApproveLeave(ctx context.Context, req attendance.ApproveLeaveRequest) (attendance.ApproveLeaveResponse, error) {
	if !validator.IsValidUUID(req.EmployeeID) {
		return attendance.ApproveLeaveResponse{}, employee.ErrEmployeeNotFound
	}
	if err := req.Validate(); err != nil {
		return attendance.ApproveLeaveResponse{}, err
	}

	var resp attendance.ApproveLeaveResponse
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.lockEmployee(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}

		record, err := s.attendanceRepo.GetByEmployeeDateAndStatusForUpdate(txCtx, emp.ID, req.ParsedDate(), attendance.StatusLeaveRequested)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return attendance.ErrLeaveRecordNotFound
			}
			return err
		}

		switch employee.Approval(req.Approval) {
		case employee.ApprovalApprove:
			approved, err := s.attendanceRepo.UpdateStatus(txCtx, record.ID, attendance.StatusOnLeave)
			if err != nil {
				return err
			}
			approved.EmployeeName = &emp.Name
			mapped := s.mapAttendanceToResponse(approved)
			resp = attendance.ApproveLeaveResponse{Status: "Leave approved", Attendance: &mapped}
		case employee.ApprovalReject:
			if err := s.attendanceRepo.Delete(txCtx, record.ID); err != nil {
				return err
			}
			resp = attendance.ApproveLeaveResponse{Status: "Leave rejected"}
		default:
			return attendance.ErrInvalidApprovalStatus
		}
		return nil
	})
	if err != nil {
		return attendance.ApproveLeaveResponse{}, err
	}

	slog.Info("leave decided", "employee_id", req.EmployeeID, "date", req.Date, "approval", req.Approval)
	return resp, nil
}

// LeaveHistory returns both requested and approved leave, newest first.
func (s *AttendanceServiceImpl) LeaveHistory(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	emp, err := s.activeEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployeeID(ctx, emp.ID, []attendance.Status{
		attendance.StatusLeaveRequested,
		attendance.StatusOnLeave,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leave history: %w", err)
	}
	return s.mapAttendancesToResponse(records), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, req attendance.DeleteAttendanceRequest) (int64, error) {
	emp, err := s.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return 0, err
	}
	if err := req.Validate(); err != nil {
		return 0, err
	}

	deleted, err := s.attendanceRepo.DeleteByEmployeeAndDates(ctx, emp.ID, req.ParsedDates())
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, attendance.ErrNothingToDelete
	}

	slog.Info("attendance records deleted", "employee_id", emp.ID, "count", deleted)
	return deleted, nil
}

// DeleteAllAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAllAttendance(ctx context.Context) (int64, error) {
	deleted, err := s.attendanceRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, attendance.ErrNothingToDelete
	}

	slog.Warn("all attendance records deleted", "count", deleted)
	return deleted, nil
}
