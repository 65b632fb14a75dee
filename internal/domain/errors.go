package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrOperationNotAllowed matches every *OperationNotAllowedError.
	ErrOperationNotAllowed = errors.New("operation not allowed")

	// ErrCycleDetected matches every *CycleDetectedError.
	ErrCycleDetected = errors.New("cycle detected in category tree")
)

// ValidationError reports invalid input to a mutation.
type ValidationError struct {
	Field string
	Msg   string
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// OperationNotAllowedError reports a mutation that would break a domain rule.
type OperationNotAllowedError struct {
	Op     string
	Reason string
}

func (e *OperationNotAllowedError) Error() string {
	return fmt.Sprintf("%s not allowed: %s", e.Op, e.Reason)
}

func (e *OperationNotAllowedError) Is(target error) bool { return target == ErrOperationNotAllowed }

// CycleDetectedError reports a malformed category tree found while walking
// ancestors of CategoryID. Err carries the underlying traversal failure.
type CycleDetectedError struct {
	CategoryID string
	Err        error
}

func (e *CycleDetectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("category %s: %v", e.CategoryID, e.Err)
	}
	return fmt.Sprintf("category %s: %s", e.CategoryID, ErrCycleDetected)
}

func (e *CycleDetectedError) Is(target error) bool { return target == ErrCycleDetected }

func (e *CycleDetectedError) Unwrap() error { return e.Err }
