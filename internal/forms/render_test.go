package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hireboard_backend/internal/models"
)

func TestRenderContract(t *testing.T) {
	tests := []struct {
		name  string
		field models.FormField
		want  InputSpec
	}{
		{
			"email input",
			models.FormField{FieldName: "email", FieldLabel: "Email", FieldType: models.FieldTypeEmail, IsRequired: true},
			InputSpec{FieldName: "email", Label: "Email", Control: ControlInput, InputType: "email", Required: true},
		},
		{
			"textarea",
			models.FormField{FieldName: "motivation", FieldLabel: "Motivation", FieldType: models.FieldTypeTextarea},
			InputSpec{FieldName: "motivation", Label: "Motivation", Control: ControlTextarea, Rows: 4},
		},
		{
			"select",
			models.FormField{FieldName: "seniority", FieldLabel: "Seniority", FieldType: models.FieldTypeSelect, FieldOptions: []string{"Junior", "Senior"}},
			InputSpec{FieldName: "seniority", Label: "Seniority", Control: ControlSelect, Choices: []string{"Junior", "Senior"}},
		},
		{
			"file",
			models.FormField{FieldName: "resume", FieldLabel: "Resume", FieldType: models.FieldTypeFile, IsRequired: true},
			InputSpec{FieldName: "resume", Label: "Resume", Control: ControlFile, Required: true},
		},
		{
			"date input",
			models.FormField{FieldName: "start_date", FieldLabel: "Start Date", FieldType: models.FieldTypeDate},
			InputSpec{FieldName: "start_date", Label: "Start Date", Control: ControlInput, InputType: "date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderContract(tt.field))
		})
	}
}

func TestRenderContractCopiesChoices(t *testing.T) {
	field := models.FormField{FieldName: "s", FieldLabel: "S", FieldType: models.FieldTypeSelect, FieldOptions: []string{"A", "B"}}
	spec := RenderContract(field)

	spec.Choices[0] = "mutated"
	assert.Equal(t, "A", field.FieldOptions[0])
}

func TestRenderContractsPreservesOrder(t *testing.T) {
	specs := RenderContracts(BaselineFields())

	assert.Len(t, specs, 4)
	assert.Equal(t, "full_name", specs[0].FieldName)
	assert.Equal(t, "location", specs[3].FieldName)
}
