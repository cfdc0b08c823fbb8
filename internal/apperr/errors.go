// Package apperr holds the error kinds shared by repositories, use cases and handlers.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrRoomUnavailable      = errors.New("room is not available for the selected dates")
	ErrDuplicateKey         = errors.New("already exists")
	ErrReferentialIntegrity = errors.New("still referenced by other records")

	// ErrCodeExhausted is reported as a duplicate key: every drawn code collided.
	ErrCodeExhausted = fmt.Errorf("confirmation code generation exhausted: %w", ErrDuplicateKey)
)

// ValidationError carries every reason a request was rejected.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Reasons, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validation builds a ValidationError, or nil when no reasons are given.
func Validation(reasons ...string) error {
	if len(reasons) == 0 {
		return nil
	}
	return &ValidationError{Reasons: reasons}
}

// NotFound wraps ErrNotFound with the kind and identifier that were missing.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// Reasons returns the validation reasons inside err, if any.
func Reasons(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reasons
	}
	return nil
}
