package review

import "context"

type ReviewRepository interface {
	Create(ctx context.Context, review PerformanceReview) (PerformanceReview, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]PerformanceReview, error)

	// ListByMinRating joins employee names and skips archived employees
	ListByMinRating(ctx context.Context, minRating int) ([]PerformanceReview, error)

	// Delete removes a review only when it belongs to employeeID
	Delete(ctx context.Context, id string, employeeID string) error
	Stats(ctx context.Context, employeeID string) (ReviewStats, error)
}
