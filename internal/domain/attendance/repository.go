package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a record; returns ErrAttendanceAlreadyRecorded when the employee already has one for the date
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for specific employee on specific date
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// GetByEmployeeDateAndStatusForUpdate locks the matching row for the surrounding transaction
	GetByEmployeeDateAndStatusForUpdate(ctx context.Context, employeeID string, date time.Time, status Status) (Attendance, error)

	UpdateCheckOut(ctx context.Context, id string, checkOut time.Time, overtimeHours float64) (Attendance, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Attendance, error)
	Delete(ctx context.Context, id string) error

	// DeleteByEmployeeAndDates returns the number of removed rows
	DeleteByEmployeeAndDates(ctx context.Context, employeeID string, dates []time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)

	SumOvertimeHours(ctx context.Context, employeeID string) (float64, error)

	// ListByEmployeeID returns records newest first; an empty statuses slice means every status
	ListByEmployeeID(ctx context.Context, employeeID string, statuses []Status) ([]Attendance, error)
	CountByStatus(ctx context.Context, employeeID string) (map[Status]int64, error)
}
