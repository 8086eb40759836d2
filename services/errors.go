package services

import (
	"errors"
	"fmt"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrSalaryNotFound  = errors.New("salary row not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateGame   = errors.New("game with this name already exists")
)

// ValidationError marks client-correctable input problems. Controllers map
// it to 400; everything else unrecognized is a storage failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
