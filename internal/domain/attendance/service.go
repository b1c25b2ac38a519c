package attendance

import (
	"context"
)

// AttendanceService drives the per-day attendance state machine
type AttendanceService interface {
	// CheckIn opens today's record
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// CheckOut closes today's record and computes overtime
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	OvertimeTotal(ctx context.Context, employeeID string) (OvertimeResponse, error)
	ListAttendance(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	RequestLeave(ctx context.Context, req LeaveRequest) (AttendanceResponse, error)

	// ApproveLeave approves (relabels) or rejects (deletes) a pending leave request
	ApproveLeave(ctx context.Context, req ApproveLeaveRequest) (ApproveLeaveResponse, error)
	LeaveHistory(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	DeleteAttendance(ctx context.Context, req DeleteAttendanceRequest) (int64, error)
	DeleteAllAttendance(ctx context.Context) (int64, error)
}
