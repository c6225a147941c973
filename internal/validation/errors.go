package validation

import (
	"sort"
	"strings"

	"github.com/ashendes/storefront-demo/internal/models"
)

// Kind classifies a field failure
type Kind string

const (
	MissingField           Kind = "MissingField"
	PatternMismatch        Kind = "PatternMismatch"
	ConditionalRequirement Kind = "ConditionalRequirement"
)

// FieldError is a single field's failure
type FieldError struct {
	Kind    Kind
	Message string
}

// FieldErrors maps a form field (by its JSON name) to its failure
type FieldErrors map[string]FieldError

// Clear drops the error for field. Called whenever the field's value changes;
// the field is not re-checked until the next submit.
func (fe FieldErrors) Clear(field string) {
	delete(fe, field)
}

// Has reports whether field currently has an error
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Fields returns the failing field names in sorted order
func (fe FieldErrors) Fields() []string {
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Wire converts the errors to their response form
func (fe FieldErrors) Wire() map[string]models.FieldError {
	if len(fe) == 0 {
		return nil
	}
	out := make(map[string]models.FieldError, len(fe))
	for name, e := range fe {
		out[name] = models.FieldError{Kind: string(e.Kind), Message: e.Message}
	}
	return out
}

// Error is returned when a form fails validation
type Error struct {
	Fields FieldErrors
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Fields.Fields(), ", ")
}
