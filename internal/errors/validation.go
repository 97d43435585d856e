package errors

import (
	"fmt"
	"strings"
)

// ValidationBuilder collects field problems and reports them together as
// one InvalidArgument error. Fields are reported in the order first seen.
type ValidationBuilder struct {
	order  []string
	fields map[string][]string
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a problem with a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	if _, seen := vb.fields[field]; !seen {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records a field with a bad value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf("is invalid: %s", reason))
}

// Build returns nil when nothing was recorded
func (vb *ValidationBuilder) Build() error {
	if len(vb.order) == 0 {
		return nil
	}

	parts := make([]string, len(vb.order))
	for i, field := range vb.order {
		parts[i] = fmt.Sprintf("%s %s", field, strings.Join(vb.fields[field], ", "))
	}
	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta("fields", vb.fields)
}
