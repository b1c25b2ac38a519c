package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Required builds a single-field "is required" error.
func Required(field string) ValidationErrors {
	return ValidationErrors{{Field: field, Message: field + " is required"}}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidUUID accepts any RFC 4122 textual UUID.
func IsValidUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// ExceedsLength counts characters, not bytes, the way VARCHAR(n) does.
func ExceedsLength(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

// Money columns are NUMERIC(12,2).
const (
	MoneyScale     = 2
	moneyIntDigits = 10
)

var maxMoney = decimal.New(1, moneyIntDigits)

// MoneyError checks an amount after rounding it to MoneyScale, which is how it is stored.
// It returns nil for a positive amount that fits the column.
func MoneyError(field string, amount decimal.Decimal) *ValidationError {
	rounded := amount.Round(MoneyScale)
	if !rounded.IsPositive() {
		return &ValidationError{Field: field, Message: field + " must be greater than zero"}
	}
	if !rounded.LessThan(maxMoney) {
		return &ValidationError{Field: field, Message: field + " must be less than 10000000000"}
	}
	return nil
}

// Username validation: 3-150 chars, letters, digits and @ . + - _
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9@.+\-_]{3,150}$`)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}
