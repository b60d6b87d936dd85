package formspoon

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/formspoon/formspoon/pkg/validator"
)

// FieldErrors aggregates per-field validation messages for one request.
// It's based on url.Values to leverage built-in string slice handling.
type FieldErrors url.Values

// NewFieldErrors creates an empty aggregation.
func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// Error implements the error interface with a summary of every field.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for field, messages := range e {
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

// Is makes the aggregation part of the form-error family, so boundary
// code can catch everything with errors.Is(err, validator.ErrForm).
func (e FieldErrors) Is(target error) bool {
	return target == validator.ErrForm
}

// Add adds an error message for a field.
func (e FieldErrors) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e FieldErrors) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no errors.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}
