package review

import "context"

type ReviewService interface {
	ListReviews(ctx context.Context, employeeID string) ([]ReviewResponse, error)
	SubmitReview(ctx context.Context, req SubmitReviewRequest) (ReviewResponse, error)
	TopPerformers(ctx context.Context) ([]TopPerformerResponse, error)
	RemoveReview(ctx context.Context, req RemoveReviewRequest) error
}
