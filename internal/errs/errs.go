// Package errs defines the error taxonomy shared by repositories, services
// and handlers. Callers test for a category with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint covers missing required fields, dangling references
	// and uniqueness or check violations.
	ErrConstraint = errors.New("constraint violation")

	// ErrWriteFailure is the catch-all for a create, update or delete that
	// failed for any other reason. The operation has been rolled back.
	ErrWriteFailure = errors.New("write failure")
)

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Constraint(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstraint, fmt.Sprintf(format, args...))
}

// WriteFailure wraps err as a write failure unless it already belongs to
// one of the more specific categories.
func WriteFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConstraint) || errors.Is(err, ErrWriteFailure) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrWriteFailure, op, err)
}
