package service

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrFormClosed           = errors.New("form is not open")
	ErrConfirmationNotFound = errors.New("confirmation not found or expired")
	// ErrDuplicateID is returned when a created record comes back with an id
	// that is already in the local list, or a loaded list repeats an id.
	ErrDuplicateID = errors.New("remote returned a duplicate user id")
)

// ValidationError lists required form fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
