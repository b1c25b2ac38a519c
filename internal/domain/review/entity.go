package review

import "time"

type PerformanceReview struct {
	ID         string
	EmployeeID string
	Review     string
	Rating     int
	CreatedAt  time.Time

	// DTO
	EmployeeName string
}

const (
	MinRating = 1
	MaxRating = 10

	// TopPerformerRating is the inclusive threshold for the top performers board.
	TopPerformerRating = 9
)
