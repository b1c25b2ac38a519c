package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/review"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) review.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

// Create implements review.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, newReview review.PerformanceReview) (review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (employee_id, review, rating)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, review, rating, created_at
	`

	var created review.PerformanceReview
	err := q.QueryRow(ctx, query, newReview.EmployeeID, newReview.Review, newReview.Rating).Scan(
		&created.ID, &created.EmployeeID, &created.Review, &created.Rating, &created.CreatedAt,
	)
	if err != nil {
		return review.PerformanceReview{}, fmt.Errorf("failed to create performance review: %w", err)
	}
	created.EmployeeName = newReview.EmployeeName
	return created, nil
}

func (r *reviewRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]review.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]review.PerformanceReview, 0)
	for rows.Next() {
		var pr review.PerformanceReview
		if err := rows.Scan(&pr.ID, &pr.EmployeeID, &pr.EmployeeName, &pr.Review, &pr.Rating, &pr.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, pr)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListByEmployeeID implements review.ReviewRepository.
func (r *reviewRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]review.PerformanceReview, error) {
	query := `
		SELECT pr.id, pr.employee_id, e.name, pr.review, pr.rating, pr.created_at
		FROM performance_reviews pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.employee_id = $1
		ORDER BY pr.created_at DESC, pr.id DESC
	`
	return r.list(ctx, query, employeeID)
}

// ListByMinRating implements review.ReviewRepository.
func (r *reviewRepositoryImpl) ListByMinRating(ctx context.Context, minRating int) ([]review.PerformanceReview, error) {
	query := `
		SELECT pr.id, pr.employee_id, e.name, pr.review, pr.rating, pr.created_at
		FROM performance_reviews pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.rating >= $1 AND e.archived = false
		ORDER BY pr.rating DESC, pr.created_at DESC, pr.id
	`
	return r.list(ctx, query, minRating)
}

// Delete implements review.ReviewRepository.
func (r *reviewRepositoryImpl) Delete(ctx context.Context, id string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE id = $1 AND employee_id = $2`, id, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete performance review with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

// Stats implements review.ReviewRepository.
func (r *reviewRepositoryImpl) Stats(ctx context.Context, employeeID string) (review.ReviewStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*), ROUND(AVG(rating), 2) FROM performance_reviews WHERE employee_id = $1`

	var stats review.ReviewStats
	var avg decimal.NullDecimal
	if err := q.QueryRow(ctx, query, employeeID).Scan(&stats.Count, &avg); err != nil {
		return review.ReviewStats{}, fmt.Errorf("failed to load review stats: %w", err)
	}
	if avg.Valid {
		stats.AverageRating = &avg.Decimal
	}
	return stats, nil
}
