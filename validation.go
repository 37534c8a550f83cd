package gestao

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a reference to a record that is not in the store
// (deleting an unknown product, deleting a sale from an empty history).
var ErrNotFound = errors.New("not found")

// ValidationError reports invalid user input at a save boundary. It is meant
// to be displayed to the user; the store is left untouched when one is returned.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string { return e.err.Error() }
func (e *ValidationError) Unwrap() error { return e.err }

// invalidf creates a ValidationError from a formatted message.
func invalidf(format string, args ...any) error {
	return &ValidationError{err: fmt.Errorf(format, args...)}
}

// invalid wraps one or more failures into a single ValidationError.
// It returns nil when all of them are nil.
func invalid(errs ...error) error {
	if err := errors.Join(errs...); err != nil {
		return &ValidationError{err: err}
	}
	return nil
}

// shared validation failures, joined into ValidationErrors at save boundaries.
var (
	errDescriptionEmpty = errors.New("description is empty")
	errAmountNegative   = errors.New("amount is negative")
	errNameEmpty        = errors.New("product name is empty")
	errPriceNotPositive = errors.New("sale price must be greater than zero")
)

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
