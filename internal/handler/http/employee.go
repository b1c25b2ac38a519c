package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workflow-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	RequestDepartmentTransfer(w http.ResponseWriter, r *http.Request)
	ApproveTransfer(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
	Unarchive(w http.ResponseWriter, r *http.Request)
	ListArchived(w http.ResponseWriter, r *http.Request)
	PermanentlyDelete(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// parseEmployeeFilter reads department, active, page and limit from the query string.
func parseEmployeeFilter(r *http.Request) (employee.EmployeeFilter, error) {
	var (
		filter employee.EmployeeFilter
		errs   validator.ValidationErrors
	)
	q := r.URL.Query()

	if department := q.Get("department"); department != "" {
		filter.Department = &department
	}
	if active := q.Get("active"); active != "" {
		parsed, err := strconv.ParseBool(active)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "active", Message: "active must be true or false"})
		} else {
			filter.Active = &parsed
		}
	}
	if page := q.Get("page"); page != "" {
		parsed, err := strconv.Atoi(page)
		if err != nil || parsed < 1 {
			errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be a positive integer"})
		} else {
			filter.Page = parsed
		}
	}
	if limit := q.Get("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 1 {
			errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be a positive integer"})
		} else {
			filter.Limit = parsed
		}
	}

	if len(errs) > 0 {
		return filter, errs
	}
	return filter, nil
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEmployeeFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Employees, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// DeleteEmployee archives the employee; the row is kept.
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w, -1)
}

// RequestDepartmentTransfer implements EmployeeHandler
func (h *employeeHandlerImpl) RequestDepartmentTransfer(w http.ResponseWriter, r *http.Request) {
	var req employee.TransferRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.employeeService.RequestDepartmentTransfer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transfer requested successfully", result)
}

// ApproveTransfer implements EmployeeHandler
func (h *employeeHandlerImpl) ApproveTransfer(w http.ResponseWriter, r *http.Request) {
	var req employee.ApprovalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	message, err := h.employeeService.ApproveTransfer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}

// Deactivate implements EmployeeHandler
func (h *employeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Deactivate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("%s deactivated", result.Name), result)
}

// Restore implements EmployeeHandler
func (h *employeeHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Restore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("%s restored", result.Name), result)
}

// Archive implements EmployeeHandler
func (h *employeeHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Archive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("%s archived", result.Name), result)
}

// Unarchive implements EmployeeHandler
func (h *employeeHandlerImpl) Unarchive(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Unarchive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("%s unarchived successfully", result.Name), result)
}

// ListArchived implements EmployeeHandler
func (h *employeeHandlerImpl) ListArchived(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListArchived(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PermanentlyDelete implements EmployeeHandler
func (h *employeeHandlerImpl) PermanentlyDelete(w http.ResponseWriter, r *http.Request) {
	var req employee.ApprovalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.employeeService.PermanentlyDelete(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("%s permanently deleted", result.Name), nil)
}

// Summary implements EmployeeHandler
func (h *employeeHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
