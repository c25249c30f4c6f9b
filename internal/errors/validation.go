package errors

import (
	"fmt"
	"strings"
)

// ValidationMetaKey is the meta key holding a map[string][]string of field problems
const ValidationMetaKey = "validation_errors"

// ValidationBuilder collects field problems and reports them as one
// InvalidArgument error. Fields are reported in the order first seen.
type ValidationBuilder struct {
	order  []string
	fields map[string][]string
}

// NewValidationBuilder returns an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: map[string][]string{}}
}

// Field records a problem with field
func (vb *ValidationBuilder) Field(field, problem string) *ValidationBuilder {
	if _, seen := vb.fields[field]; !seen {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], problem)
	return vb
}

// RequiredField records a missing dependency or value
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records a present but unusable value
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, "is invalid: "+reason)
}

// Range records a problem when value is outside [lo, hi]
func (vb *ValidationBuilder) Range(field string, value, lo, hi int) *ValidationBuilder {
	if value < lo || value > hi {
		vb.Field(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
	return vb
}

// OneOf records a problem when value is not in allowed
func (vb *ValidationBuilder) OneOf(field, value string, allowed []string) *ValidationBuilder {
	for _, a := range allowed {
		if a == value {
			return vb
		}
	}
	return vb.Field(field, "must be one of: "+strings.Join(allowed, ", "))
}

// Build returns nil when nothing was recorded, otherwise an InvalidArgument
// error carrying every field under ValidationMetaKey.
func (vb *ValidationBuilder) Build() error {
	if len(vb.order) == 0 {
		return nil
	}

	parts := make([]string, len(vb.order))
	fields := make(map[string][]string, len(vb.fields))
	for i, field := range vb.order {
		problems := vb.fields[field]
		parts[i] = field + ": " + strings.Join(problems, ", ")
		fields[field] = append([]string(nil), problems...)
	}

	return InvalidArgument("validation failed: "+strings.Join(parts, "; ")).
		WithMeta(ValidationMetaKey, fields)
}
