package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/review"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
)

const (
	CodeInvalidState     = "INVALID_STATE"
	CodeApprovalRequired = "APPROVAL_REQUIRED"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var notArchived *employee.NotArchivedError

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "A user with that username already exists.")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "A user with that email already exists.")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.As(err, &notArchived):
		StateError(w, CodeInvalidState, notArchived.Error())
	case errors.Is(err, employee.ErrEmployeeNotArchived):
		StateError(w, CodeInvalidState, "Employee is not archived")
	case errors.Is(err, employee.ErrApprovalRequired):
		StateError(w, CodeApprovalRequired, "HR approval required")
	case errors.Is(err, employee.ErrInvalidApprovalStatus),
		errors.Is(err, attendance.ErrInvalidApprovalStatus):
		StateError(w, CodeInvalidState, "Invalid approval status")

	// Review domain errors
	case errors.Is(err, review.ErrReviewNotFound):
		NotFound(w, "Review not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Attendance already recorded for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrAttendanceAlreadyRecorded):
		Conflict(w, "Attendance already recorded for this date")
	case errors.Is(err, attendance.ErrNoCheckInRecord):
		StateError(w, CodeInvalidState, "No check-in record found")
	case errors.Is(err, attendance.ErrLeaveRecordNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, attendance.ErrNothingToDelete):
		NotFound(w, "No attendance records found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
