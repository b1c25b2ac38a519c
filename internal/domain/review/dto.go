package review

import (
	"fmt"

	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubmitReviewRequest struct {
	EmployeeID string `json:"-"`
	Review     string `json:"review"`
	Rating     *int   `json:"rating"`
}

func (r *SubmitReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Review) {
		errs = append(errs, validator.ValidationError{Field: "review", Message: "Review and rating are required"})
	}
	if r.Rating == nil {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "Review and rating are required"})
	} else if *r.Rating < MinRating || *r.Rating > MaxRating {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RemoveReviewRequest struct {
	EmployeeID string `json:"-"`
	ReviewID   string `json:"review_id"`
}

func (r *RemoveReviewRequest) Validate() error {
	if validator.IsEmpty(r.ReviewID) {
		return validator.Required("review_id")
	}
	if !validator.IsValidUUID(r.ReviewID) {
		return validator.ValidationErrors{{Field: "review_id", Message: "review_id must be a valid UUID"}}
	}
	return nil
}

type ReviewResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Review       string `json:"review"`
	Rating       int    `json:"rating"`
	CreatedAt    string `json:"created_at"`
}

type TopPerformerResponse struct {
	ReviewID     string `json:"review_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Rating       int    `json:"rating"`
}

// ReviewStats is used by the employee summary.
type ReviewStats struct {
	Count         int64
	AverageRating *decimal.Decimal
}
