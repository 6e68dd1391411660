package model

import (
	"errors"
	"strings"
)

var (
	ErrValidation     = errors.New("validation error")                       // 400
	ErrSupplyNotFound = errors.New("supply not found")                       // 404
	ErrNoSupplies     = errors.New("no emergency supplies found")            // 404
	ErrSupplyConflict = errors.New("a supply with that name already exists") // 409
)

// ValidationError describes rejected input and the fields that caused it.
type ValidationError struct {
	Fields []string
	Reason string
}

func NewValidationError(reason string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Reason: reason}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return strings.Join(e.Fields, ", ") + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
