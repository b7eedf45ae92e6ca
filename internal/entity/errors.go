package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced symbol or record does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports bad user input. The operation is aborted with no state change.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DuplicateError reports an add of a code that already exists in the watchlist.
type DuplicateError struct {
	Code string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("stock %s is already in the watchlist", e.Code)
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsDuplicate reports whether err is or wraps a DuplicateError.
func IsDuplicate(err error) bool {
	var d *DuplicateError
	return errors.As(err, &d)
}
