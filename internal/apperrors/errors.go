package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected failure that should not leak details to callers.
var ErrInternal = errors.New("internal error")

// ErrInvalidState indicates a payment or reversal attempted from a state that forbids it.
var ErrInvalidState = errors.New("invalid state for operation")

// ErrMissingCard indicates a credit card payment without a resolvable card.
var ErrMissingCard = errors.New("credit card payment requires an existing card")

// ErrInvalidRecurrenceRule indicates a recurrence rule that cannot be expanded.
var ErrInvalidRecurrenceRule = errors.New("invalid recurrence rule")

// ErrInvalidDate indicates malformed calendar input.
var ErrInvalidDate = errors.New("invalid date")

// ErrPersistence indicates the storage layer failed and the write was rolled back.
var ErrPersistence = errors.New("persistence error")

// AppError carries an HTTP-ish status code alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets storage failures (code >= 500) match ErrPersistence.
func (e *AppError) Is(target error) bool {
	return target == ErrPersistence && e.Code >= 500
}
