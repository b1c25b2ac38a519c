package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeNotArchived   = errors.New("employee is not archived")
	ErrApprovalRequired      = errors.New("HR approval required")
	ErrInvalidApprovalStatus = errors.New("invalid approval status")
)

// NotArchivedError reports an unarchive of an employee that is not archived.
type NotArchivedError struct {
	Name string
}

func (e *NotArchivedError) Error() string {
	return e.Name + " is not archived"
}

func (e *NotArchivedError) Unwrap() error {
	return ErrEmployeeNotArchived
}
