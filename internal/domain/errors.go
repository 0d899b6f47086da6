package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrModelService marks any failure of the semantic analysis collaborator:
	// network, API, or malformed output. Always fatal, always propagated.
	ErrModelService = errors.New("model service error")

	// ErrDictionaryService marks any failure of the lexical collaborator.
	// Recoverable: the orchestrator absorbs it into a warning.
	ErrDictionaryService = errors.New("dictionary service error")
)

// ErrMixedScript is the user-input error for passages that combine Devanagari
// and Latin transliteration. The message is fixed; the condition never
// triggers retry logic — the user must resubmit in a single script.
var ErrMixedScript = fmt.Errorf(
	"%w: mixed-script input is not supported; submit the passage either entirely in Devanagari or entirely in IAST transliteration",
	ErrValidation,
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
