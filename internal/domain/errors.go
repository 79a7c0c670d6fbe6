package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is compares by code so errors.Is works on wrapped domain errors.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - looked-up entity has no record
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrNoSnapshot - no assignment has been computed yet
	ErrNoSnapshot = &DomainError{
		Code:    "NO_SNAPSHOT",
		Message: "no assignment snapshot exists",
	}

	// ErrRosterMismatch - assignment references an entity missing from the roster
	ErrRosterMismatch = &DomainError{
		Code:    "DATA_MISMATCH",
		Message: "assignment record exists but roster detail is missing",
	}
)

// NewNotFoundError creates a NOT_FOUND error naming the missing resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewRosterInvalidError reports a roster that failed validation at load time.
func NewRosterInvalidError(detail string) *DomainError {
	return &DomainError{
		Code:    "ROSTER_INVALID",
		Message: detail,
	}
}

// NewBadRequestError reports a malformed client request.
func NewBadRequestError(detail string) *DomainError {
	return &DomainError{
		Code:    "BAD_REQUEST",
		Message: detail,
	}
}
