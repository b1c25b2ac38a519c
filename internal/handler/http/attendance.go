package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-workflow-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	OvertimeHours(w http.ResponseWriter, r *http.Request)
	RequestLeave(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	LeaveHistory(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAllAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAttendance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckIn implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckIn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.CheckOut(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// OvertimeHours implements AttendanceHandler
func (h *attendanceHandlerImpl) OvertimeHours(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.OvertimeTotal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RequestLeave implements AttendanceHandler
func (h *attendanceHandlerImpl) RequestLeave(w http.ResponseWriter, r *http.Request) {
	var req attendance.LeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.attendanceService.RequestLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave requested", result)
}

// ApproveLeave implements AttendanceHandler
func (h *attendanceHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	var req attendance.ApproveLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.attendanceService.ApproveLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Status, result.Attendance)
}

// LeaveHistory implements AttendanceHandler
func (h *attendanceHandlerImpl) LeaveHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.LeaveHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.DeleteAttendanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	deleted, err := h.attendanceService.DeleteAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w, deleted)
}

// DeleteAllAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAllAttendance(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.attendanceService.DeleteAllAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w, deleted)
}
