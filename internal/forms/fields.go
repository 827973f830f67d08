// Package forms implements the dynamic application-form engine: schema
// construction and validation, render contracts for typed fields, response
// collection, and labeled readback of persisted answers.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"hireboard_backend/internal/models"
)

const maxFieldNameLen = 50

var (
	ErrEmptyLabel         = errors.New("field label must not be empty")
	ErrDuplicateFieldName = errors.New("duplicate field name in schema")
	ErrMissingOptions     = errors.New("select field requires at least one option")
	ErrInvalidFieldType   = errors.New("unknown field type")
)

// GenerateFieldName derives the machine-safe response-map key from a human
// label: lowercased, spaces collapsed to underscores, every other
// non-alphanumeric rune stripped, capped at 50 characters.
func GenerateFieldName(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '_':
			b.WriteByte('_')
		}
	}
	name := b.String()
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	name = strings.Trim(name, "_")
	if len(name) > maxFieldNameLen {
		name = name[:maxFieldNameLen]
	}
	return name
}

// BaselineFields returns the fixed field set present on every job's schema.
// These occupy orders 0..3 and cannot be removed or reordered by the schema
// author; caller-supplied fields are appended after them.
func BaselineFields() []models.FormField {
	return []models.FormField{
		{FieldName: "full_name", FieldType: models.FieldTypeText, FieldLabel: "Full Name", IsRequired: true, FieldOrder: 0},
		{FieldName: "email", FieldType: models.FieldTypeEmail, FieldLabel: "Email", IsRequired: true, FieldOrder: 1},
		{FieldName: "linkedin_url", FieldType: models.FieldTypeText, FieldLabel: "LinkedIn URL", FieldOrder: 2},
		{FieldName: "location", FieldType: models.FieldTypeText, FieldLabel: "Location", FieldOrder: 3},
	}
}

// BuildSchema assembles the persisted field set for a job: baseline fields
// first, then the caller's fields with derived names, with field_order
// renumbered contiguously from 0. Caller fields keep their given order.
func BuildSchema(jobID string, fields []models.FormField) ([]models.FormField, error) {
	schema := BaselineFields()
	seen := make(map[string]struct{}, len(schema)+len(fields))
	for _, f := range schema {
		seen[f.FieldName] = struct{}{}
	}

	for _, f := range fields {
		label := strings.TrimSpace(f.FieldLabel)
		if label == "" {
			return nil, ErrEmptyLabel
		}
		if !f.FieldType.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldType, f.FieldType)
		}
		name := GenerateFieldName(label)
		if name == "" {
			return nil, fmt.Errorf("%w: label %q produces no usable name", ErrEmptyLabel, label)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFieldName, name)
		}
		seen[name] = struct{}{}

		field := f
		field.FieldName = name
		field.FieldLabel = label
		if field.FieldType == models.FieldTypeSelect {
			if len(compactOptions(field.FieldOptions)) == 0 {
				return nil, fmt.Errorf("%w: %q", ErrMissingOptions, label)
			}
			field.FieldOptions = compactOptions(field.FieldOptions)
		} else {
			field.FieldOptions = nil
		}
		schema = append(schema, field)
	}

	for i := range schema {
		schema[i].JobPositionID = jobID
		schema[i].FieldOrder = i
	}
	return schema, nil
}

func compactOptions(options []string) []string {
	var out []string
	for _, o := range options {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
