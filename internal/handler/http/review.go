package http

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/review"
	"github.com/cmlabs-hris/hris-workflow-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReviewHandler interface {
	ListReviews(w http.ResponseWriter, r *http.Request)
	SubmitReview(w http.ResponseWriter, r *http.Request)
	TopPerformers(w http.ResponseWriter, r *http.Request)
	RemoveReview(w http.ResponseWriter, r *http.Request)
}

type reviewHandlerImpl struct {
	reviewService review.ReviewService
}

func NewReviewHandler(reviewService review.ReviewService) ReviewHandler {
	return &reviewHandlerImpl{reviewService: reviewService}
}

// ListReviews implements ReviewHandler
func (h *reviewHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.ListReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SubmitReview implements ReviewHandler
func (h *reviewHandlerImpl) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req review.SubmitReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.reviewService.SubmitReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("Performance review submitted for %s", result.EmployeeName), result)
}

// TopPerformers implements ReviewHandler
func (h *reviewHandlerImpl) TopPerformers(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.TopPerformers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RemoveReview implements ReviewHandler
func (h *reviewHandlerImpl) RemoveReview(w http.ResponseWriter, r *http.Request) {
	var req review.RemoveReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	if err := h.reviewService.RemoveReview(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w, -1)
}
