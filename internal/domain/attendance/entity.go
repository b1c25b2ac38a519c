package attendance

import (
	"math"
	"time"
)

type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Status        Status
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
	OvertimeHours float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusLeave   Status = "Leave"

	// Leave sub-flow: requested, then approved. A rejected request is deleted.
	StatusLeaveRequested Status = "leave"
	StatusOnLeave        Status = "on leave"
)

// StandardWorkHours is the daily baseline; anything beyond it counts as overtime.
const StandardWorkHours = 8.0

// OvertimeHours returns max(0, worked-8) for a shift, rounded to two decimals.
func OvertimeHours(checkIn, checkOut time.Time) float64 {
	worked := checkOut.Sub(checkIn).Hours()
	overtime := worked - StandardWorkHours
	if overtime <= 0 {
		return 0
	}
	return math.Round(overtime*100) / 100
}

// DateOf returns the calendar day of t, as seen in t's location, at midnight UTC.
// Dates parsed from requests use the same representation.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HasCheckedIn reports whether the record went through check-in.
func (a Attendance) HasCheckedIn() bool {
	return a.CheckInTime != nil
}

// HasCheckedOut reports whether the record is closed.
func (a Attendance) HasCheckedOut() bool {
	return a.CheckOutTime != nil
}
