package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/review"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

type salaryRepository struct {
	s *Store
}

func (r *salaryRepository) Create(ctx context.Context, entry salary.SalaryHistory) (salary.SalaryHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry.ID = newID()
	entry.ChangedAt = r.s.Now()
	r.s.salaries = append(r.s.salaries, entry)
	return entry, nil
}

// ListByEmployeeID returns entries in insertion order, which is changed_at order.
func (r *salaryRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]salary.SalaryHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var entries []salary.SalaryHistory
	for _, h := range r.s.salaries {
		if h.EmployeeID == employeeID {
			h.EmployeeName = r.s.employeeName(employeeID)
			entries = append(entries, h)
		}
	}
	return entries, nil
}

func (r *salaryRepository) CountByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	entries, err := r.ListByEmployeeID(ctx, employeeID)
	return int64(len(entries)), err
}

type reviewRepository struct {
	s *Store
}

func (r *reviewRepository) Create(ctx context.Context, pr review.PerformanceReview) (review.PerformanceReview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	pr.ID = newID()
	pr.CreatedAt = r.s.Now()
	r.s.reviews = append(r.s.reviews, pr)
	return pr, nil
}

func (r *reviewRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]review.PerformanceReview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var reviews []review.PerformanceReview
	for i := len(r.s.reviews) - 1; i >= 0; i-- {
		pr := r.s.reviews[i]
		if pr.EmployeeID == employeeID {
			pr.EmployeeName = r.s.employeeName(employeeID)
			reviews = append(reviews, pr)
		}
	}
	return reviews, nil
}

func (r *reviewRepository) ListByMinRating(ctx context.Context, minRating int) ([]review.PerformanceReview, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var reviews []review.PerformanceReview
	for _, pr := range r.s.reviews {
		emp, ok := r.s.employees[pr.EmployeeID]
		if !ok || emp.Archived || pr.Rating < minRating {
			continue
		}
		pr.EmployeeName = emp.Name
		reviews = append(reviews, pr)
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		if reviews[i].Rating != reviews[j].Rating {
			return reviews[i].Rating > reviews[j].Rating
		}
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, pr := range r.s.reviews {
		if pr.ID == id && pr.EmployeeID == employeeID {
			r.s.reviews = append(r.s.reviews[:i], r.s.reviews[i+1:]...)
			return nil
		}
	}
	return review.ErrReviewNotFound
}

func (r *reviewRepository) Stats(ctx context.Context, employeeID string) (review.ReviewStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var (
		count int64
		sum   int64
	)
	for _, pr := range r.s.reviews {
		if pr.EmployeeID == employeeID {
			count++
			sum += int64(pr.Rating)
		}
	}

	stats := review.ReviewStats{Count: count}
	if count > 0 {
		avg := decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(count), 2)
		stats.AverageRating = &avg
	}
	return stats, nil
}
