package review

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")
)
