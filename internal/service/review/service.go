package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/review"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
)

type ReviewServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	reviewRepo   review.ReviewRepository
}

func NewReviewService(employeeRepo employee.EmployeeRepository, reviewRepo review.ReviewRepository) review.ReviewService {
	return &ReviewServiceImpl{
		employeeRepo: employeeRepo,
		reviewRepo:   reviewRepo,
	}
}

func mapReviewToResponse(pr review.PerformanceReview) review.ReviewResponse {
	return review.ReviewResponse{
		ID:           pr.ID,
		EmployeeID:   pr.EmployeeID,
		EmployeeName: pr.EmployeeName,
		Review:       pr.Review,
		Rating:       pr.Rating,
		CreatedAt:    pr.CreatedAt.Format(time.RFC3339),
	}
}

func (s *ReviewServiceImpl) activeEmployee(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.employeeRepo.GetByID(ctx, id)
}

// ListReviews implements review.ReviewService.
func (s *ReviewServiceImpl) ListReviews(ctx context.Context, employeeID string) ([]review.ReviewResponse, error) {
	if _, err := s.activeEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}

	responses := make([]review.ReviewResponse, 0, len(reviews))
	for _, pr := range reviews {
		responses = append(responses, mapReviewToResponse(pr))
	}
	return responses, nil
}

// SubmitReview implements review.ReviewService.
func (s *ReviewServiceImpl) SubmitReview(ctx context.Context, req review.SubmitReviewRequest) (review.ReviewResponse, error) {
	emp, err := s.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	created, err := s.reviewRepo.Create(ctx, review.PerformanceReview{
		EmployeeID:   emp.ID,
		Review:       strings.TrimSpace(req.Review),
		Rating:       *req.Rating,
		EmployeeName: emp.Name,
	})
	if err != nil {
		return review.ReviewResponse{}, err
	}

	slog.Info("performance review submitted", "employee_id", emp.ID, "rating", created.Rating)
	return mapReviewToResponse(created), nil
}

// TopPerformers implements review.ReviewService.
func (s *ReviewServiceImpl) TopPerformers(ctx context.Context) ([]review.TopPerformerResponse, error) {
	reviews, err := s.reviewRepo.ListByMinRating(ctx, review.TopPerformerRating)
	if err != nil {
		return nil, fmt.Errorf("failed to list top performers: %w", err)
	}

	performers := make([]review.TopPerformerResponse, 0, len(reviews))
	for _, pr := range reviews {
		performers = append(performers, review.TopPerformerResponse{
			ReviewID:     pr.ID,
			EmployeeID:   pr.EmployeeID,
			EmployeeName: pr.EmployeeName,
			Rating:       pr.Rating,
		})
	}
	return performers, nil
}

// RemoveReview implements review.ReviewService.
func (s *ReviewServiceImpl) RemoveReview(ctx context.Context, req review.RemoveReviewRequest) error {
	if _, err := s.activeEmployee(ctx, req.EmployeeID); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, req.ReviewID, req.EmployeeID); err != nil {
		return err
	}

	slog.Info("performance review removed", "employee_id", req.EmployeeID, "review_id", req.ReviewID)
	return nil
}
