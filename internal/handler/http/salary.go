package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/salary"
	"github.com/cmlabs-hris/hris-workflow-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	GetHistory(w http.ResponseWriter, r *http.Request)
	AdjustSalary(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// GetHistory implements SalaryHandler
func (h *salaryHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.GetHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Message != "" {
		response.SuccessWithMessage(w, result.Message, result.History)
		return
	}
	response.Success(w, result.History)
}

// AdjustSalary implements SalaryHandler
func (h *salaryHandlerImpl) AdjustSalary(w http.ResponseWriter, r *http.Request) {
	var req salary.AdjustSalaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.salaryService.AdjustSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary adjusted successfully", result)
}
