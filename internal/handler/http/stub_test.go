package http

import (
	"context"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/review"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/salary"
)

type stubEmployeeService struct {
	listFn      func(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error)
	getFn       func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	createFn    func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	updateFn    func(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn    func(ctx context.Context, id string) error
	transferFn  func(ctx context.Context, req employee.TransferRequest) (employee.EmployeeResponse, error)
	approveFn   func(ctx context.Context, req employee.ApprovalRequest) (string, error)
	lifecycleFn func(ctx context.Context, op string, id string) (employee.EmployeeResponse, error)
	archivedFn  func(ctx context.Context) ([]employee.EmployeeResponse, error)
	permanentFn func(ctx context.Context, req employee.ApprovalRequest) (employee.EmployeeResponse, error)
	summaryFn   func(ctx context.Context, id string) (employee.SummaryResponse, error)
}

func (s stubEmployeeService) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if s.listFn == nil {
		return employee.ListEmployeeResponse{}, nil
	}
	return s.listFn(ctx, filter)
}

func (s stubEmployeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if s.getFn == nil {
		return employee.EmployeeResponse{ID: id}, nil
	}
	return s.getFn(ctx, id)
}

func (s stubEmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if s.createFn == nil {
		return employee.EmployeeResponse{}, nil
	}
	return s.createFn(ctx, req)
}

func (s stubEmployeeService) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if s.updateFn == nil {
		return employee.EmployeeResponse{}, nil
	}
	return s.updateFn(ctx, req)
}

func (s stubEmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s stubEmployeeService) RequestDepartmentTransfer(ctx context.Context, req employee.TransferRequest) (employee.EmployeeResponse, error) {
	if s.transferFn == nil {
		return employee.EmployeeResponse{}, nil
	}
	return s.transferFn(ctx, req)
}

func (s stubEmployeeService) ApproveTransfer(ctx context.Context, req employee.ApprovalRequest) (string, error) {
	if s.approveFn == nil {
		return "", nil
	}
	return s.approveFn(ctx, req)
}

func (s stubEmployeeService) lifecycle(ctx context.Context, op, id string) (employee.EmployeeResponse, error) {
	if s.lifecycleFn == nil {
		return employee.EmployeeResponse{ID: id, Name: "Alice"}, nil
	}
	return s.lifecycleFn(ctx, op, id)
}

func (s stubEmployeeService) Deactivate(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return s.lifecycle(ctx, "deactivate", id)
}

func (s stubEmployeeService) Restore(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return s.lifecycle(ctx, "restore", id)
}

func (s stubEmployeeService) Archive(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return s.lifecycle(ctx, "archive", id)
}

func (s stubEmployeeService) Unarchive(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return s.lifecycle(ctx, "unarchive", id)
}

func (s stubEmployeeService) ListArchived(ctx context.Context) ([]employee.EmployeeResponse, error) {
	if s.archivedFn == nil {
		return nil, nil
	}
	return s.archivedFn(ctx)
}

func (s stubEmployeeService) PermanentlyDelete(ctx context.Context, req employee.ApprovalRequest) (employee.EmployeeResponse, error) {
	if s.permanentFn == nil {
		return employee.EmployeeResponse{}, nil
	}
	return s.permanentFn(ctx, req)
}

func (s stubEmployeeService) Summary(ctx context.Context, id string) (employee.SummaryResponse, error) {
	if s.summaryFn == nil {
		return employee.SummaryResponse{}, nil
	}
	return s.summaryFn(ctx, id)
}

type stubSalaryService struct {
	historyFn func(ctx context.Context, employeeID string) (salary.HistoryResponse, error)
	adjustFn  func(ctx context.Context, req salary.AdjustSalaryRequest) (salary.SalaryHistoryResponse, error)
}

func (s stubSalaryService) GetHistory(ctx context.Context, employeeID string) (salary.HistoryResponse, error) {
	if s.historyFn == nil {
		return salary.HistoryResponse{}, nil
	}
	return s.historyFn(ctx, employeeID)
}

func (s stubSalaryService) AdjustSalary(ctx context.Context, req salary.AdjustSalaryRequest) (salary.SalaryHistoryResponse, error) {
	if s.adjustFn == nil {
		return salary.SalaryHistoryResponse{}, nil
	}
	return s.adjustFn(ctx, req)
}

type stubReviewService struct {
	listFn   func(ctx context.Context, employeeID string) ([]review.ReviewResponse, error)
	submitFn func(ctx context.Context, req review.SubmitReviewRequest) (review.ReviewResponse, error)
	topFn    func(ctx context.Context) ([]review.TopPerformerResponse, error)
	removeFn func(ctx context.Context, req review.RemoveReviewRequest) error
}

func (s stubReviewService) ListReviews(ctx context.Context, employeeID string) ([]review.ReviewResponse, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, employeeID)
}

func (s stubReviewService) SubmitReview(ctx context.Context, req review.SubmitReviewRequest) (review.ReviewResponse, error) {
	if s.submitFn == nil {
		return review.ReviewResponse{}, nil
	}
	return s.submitFn(ctx, req)
}

func (s stubReviewService) TopPerformers(ctx context.Context) ([]review.TopPerformerResponse, error) {
	if s.topFn == nil {
		return nil, nil
	}
	return s.topFn(ctx)
}

func (s stubReviewService) RemoveReview(ctx context.Context, req review.RemoveReviewRequest) error {
	if s.removeFn == nil {
		return nil
	}
	return s.removeFn(ctx, req)
}

type stubAttendanceService struct {
	checkInFn      func(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error)
	checkOutFn     func(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error)
	approveLeaveFn func(ctx context.Context, req attendance.ApproveLeaveRequest) (attendance.ApproveLeaveResponse, error)
	deleteFn       func(ctx context.Context, req attendance.DeleteAttendanceRequest) (int64, error)
	deleteAllFn    func(ctx context.Context) (int64, error)
}

func (s stubAttendanceService) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	if s.checkInFn == nil {
		return attendance.AttendanceResponse{}, nil
	}
	return s.checkInFn(ctx, employeeID)
}

func (s stubAttendanceService) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	if s.checkOutFn == nil {
		return attendance.AttendanceResponse{}, nil
	}
	return s.checkOutFn(ctx, employeeID)
}

func (s stubAttendanceService) OvertimeTotal(ctx context.Context, employeeID string) (attendance.OvertimeResponse, error) {
	return attendance.OvertimeResponse{EmployeeID: employeeID}, nil
}

func (s stubAttendanceService) ListAttendance(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func (s stubAttendanceService) RequestLeave(ctx context.Context, req attendance.LeaveRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{EmployeeID: req.EmployeeID, Date: req.Date, Status: string(attendance.StatusLeaveRequested)}, nil
}

func (s stubAttendanceService) ApproveLeave(ctx context.Context, req attendance.ApproveLeaveRequest) (attendance.ApproveLeaveResponse, error) {
	if s.approveLeaveFn == nil {
		return attendance.ApproveLeaveResponse{}, nil
	}
	return s.approveLeaveFn(ctx, req)
}

func (s stubAttendanceService) LeaveHistory(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func (s stubAttendanceService) DeleteAttendance(ctx context.Context, req attendance.DeleteAttendanceRequest) (int64, error) {
	if s.deleteFn == nil {
		return 0, nil
	}
	return s.deleteFn(ctx, req)
}

func (s stubAttendanceService) DeleteAllAttendance(ctx context.Context) (int64, error) {
	if s.deleteAllFn == nil {
		return 0, nil
	}
	return s.deleteAllFn(ctx)
}

type stubAuthService struct {
	registerFn func(ctx context.Context, req auth.RegisterRequest) (auth.UserSummary, error)
	loginFn    func(ctx context.Context, req auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error)
	refreshFn  func(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error)
	logoutFn   func(ctx context.Context, refreshToken string) error
}

func (s stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserSummary, error) {
	if s.registerFn == nil {
		return auth.UserSummary{}, nil
	}
	return s.registerFn(ctx, req)
}

func (s stubAuthService) Login(ctx context.Context, req auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if s.loginFn == nil {
		return auth.TokenResponse{}, nil
	}
	return s.loginFn(ctx, req, sessionTrackReq)
}

func (s stubAuthService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if s.refreshFn == nil {
		return auth.AccessTokenResponse{}, nil
	}
	return s.refreshFn(ctx, req)
}

func (s stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, refreshToken)
}
