package entity

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist for the caller
	ErrNotFound = errors.New("not found")

	// ErrOwnershipViolation is returned when a log references a parent owned by another user
	ErrOwnershipViolation = errors.New("ownership violation")

	// ErrValidation is returned when input fails type or range constraints
	ErrValidation = errors.New("validation failed")
)
