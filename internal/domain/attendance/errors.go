package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("attendance already recorded for today")
	ErrNoCheckInRecord   = errors.New("no check-in record found")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	// Leave errors
	ErrLeaveRecordNotFound       = errors.New("leave request not found")
	ErrAttendanceAlreadyRecorded = errors.New("attendance already recorded for this date")
	ErrInvalidApprovalStatus     = errors.New("invalid approval status")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNothingToDelete    = errors.New("no attendance records found")
)
