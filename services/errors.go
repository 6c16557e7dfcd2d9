package services

import (
	"errors"
	"fmt"
)

// Errors returned by the management services
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrAppointmentConflict = errors.New("appointment time conflicts with an existing appointment")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
