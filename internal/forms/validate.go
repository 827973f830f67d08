package forms

import (
	"fmt"
	"strings"
	"time"

	"hireboard_backend/internal/models"
)

// MissingRequiredFieldError names the first required field without a
// non-empty answer, by label, in schema order.
type MissingRequiredFieldError struct {
	Field models.FormField
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("please fill in the required field: %s", e.Field.FieldLabel)
}

// InvalidValueError reports an answer that does not match its field's
// declared type.
type InvalidValueError struct {
	Field  models.FormField
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field.FieldLabel, e.Reason)
}

// ValidateResponses checks a response map against its schema: every required
// field must have a present, non-empty answer, and every present answer must
// match the declared field type. Keys without a schema field are tolerated;
// readback labels them by raw key.
func ValidateResponses(schema []models.FormField, values map[string]any) error {
	for _, field := range schema {
		raw, ok := values[field.FieldName]
		str, isString := raw.(string)
		empty := !ok || raw == nil || (isString && strings.TrimSpace(str) == "")

		if empty {
			if field.IsRequired {
				f := field
				return &MissingRequiredFieldError{Field: f}
			}
			continue
		}
		if !isString {
			return &InvalidValueError{Field: field, Reason: fmt.Sprintf("expected a string, got %T", raw)}
		}
		if err := checkTypedValue(field, strings.TrimSpace(str)); err != nil {
			return err
		}
	}
	return nil
}

func checkTypedValue(field models.FormField, value string) error {
	switch field.FieldType {
	case models.FieldTypeEmail:
		at := strings.Index(value, "@")
		if at <= 0 || at == len(value)-1 || strings.ContainsAny(value, " \t") {
			return &InvalidValueError{Field: field, Reason: "not a valid email address"}
		}
	case models.FieldTypeNumber:
		trimmed := strings.TrimPrefix(value, "-")
		if trimmed == "" {
			return &InvalidValueError{Field: field, Reason: "not a number"}
		}
		for _, r := range trimmed {
			if r < '0' || r > '9' {
				return &InvalidValueError{Field: field, Reason: "not a number"}
			}
		}
	case models.FieldTypeDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return &InvalidValueError{Field: field, Reason: "expected YYYY-MM-DD"}
		}
	case models.FieldTypeSelect:
		for _, option := range field.FieldOptions {
			if value == option {
				return nil
			}
		}
		return &InvalidValueError{Field: field, Reason: "not one of the configured options"}
	}
	return nil
}
