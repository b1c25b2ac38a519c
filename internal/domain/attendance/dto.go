package attendance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
)

type LeaveRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"date"`
}

func (r *LeaveRequest) Validate() error {
	if validator.IsEmpty(r.Date) {
		return validator.Required("date")
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		return validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	return nil
}

func (r *LeaveRequest) ParsedDate() time.Time {
	d, _ := validator.IsValidDate(r.Date)
	return d
}

type ApproveLeaveRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"date"`
	Approval   string `json:"approval"`
}

func (r *ApproveLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Approval) {
		errs = append(errs, validator.ValidationError{Field: "approval", Message: "approval is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *ApproveLeaveRequest) ParsedDate() time.Time {
	d, _ := validator.IsValidDate(r.Date)
	return d
}

type DeleteAttendanceRequest struct {
	EmployeeID string   `json:"-"`
	Dates      []string `json:"dates"`
}

func (r *DeleteAttendanceRequest) Validate() error {
	if len(r.Dates) == 0 {
		return validator.ValidationErrors{{Field: "dates", Message: "dates must be a non-empty list"}}
	}

	var errs validator.ValidationErrors
	for i, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("dates[%d]", i),
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *DeleteAttendanceRequest) ParsedDates() []time.Time {
	dates := make([]time.Time, 0, len(r.Dates))
	for _, s := range r.Dates {
		if d, ok := validator.IsValidDate(s); ok {
			dates = append(dates, d)
		}
	}
	return dates
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	CheckInTime   *string `json:"check_in_time"`
	CheckOutTime  *string `json:"check_out_time"`
	OvertimeHours float64 `json:"overtime_hours"`
}

type ApproveLeaveResponse struct {
	Status     string              `json:"status"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

type OvertimeResponse struct {
	EmployeeID         string  `json:"employee_id"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
}
