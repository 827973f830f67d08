package forms

import (
	"hireboard_backend/internal/models"
)

type Control string

const (
	ControlInput    Control = "input"
	ControlTextarea Control = "textarea"
	ControlSelect   Control = "select"
	ControlFile     Control = "file"
)

// InputSpec describes the editable input a field renders to. InputType is
// the semantic single-line type (text, email, tel, number, date) and is only
// set for ControlInput. Rows is a visual height hint for textareas, not a
// behavioral contract.
type InputSpec struct {
	FieldName string   `json:"field_name"`
	Label     string   `json:"label"`
	Control   Control  `json:"control"`
	InputType string   `json:"input_type,omitempty"`
	Choices   []string `json:"choices,omitempty"`
	Required  bool     `json:"required"`
	Rows      int      `json:"rows,omitempty"`
}

// RenderContract maps a field definition to its input contract.
func RenderContract(field models.FormField) InputSpec {
	spec := InputSpec{
		FieldName: field.FieldName,
		Label:     field.FieldLabel,
		Required:  field.IsRequired,
	}

	switch field.FieldType {
	case models.FieldTypeTextarea:
		spec.Control = ControlTextarea
		spec.Rows = 4
	case models.FieldTypeSelect:
		spec.Control = ControlSelect
		spec.Choices = append([]string(nil), field.FieldOptions...)
	case models.FieldTypeFile:
		spec.Control = ControlFile
	default:
		spec.Control = ControlInput
		spec.InputType = string(field.FieldType)
	}
	return spec
}

// RenderContracts maps a whole schema, preserving field order.
func RenderContracts(schema []models.FormField) []InputSpec {
	specs := make([]InputSpec, 0, len(schema))
	for _, f := range schema {
		specs = append(specs, RenderContract(f))
	}
	return specs
}
