package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireboard_backend/internal/models"
)

func TestGenerateFieldName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Years of Experience", "years_of_experience"},
		{"  Expected Salary  ", "expected_salary"},
		{"What's your GitHub URL?", "whats_your_github_url"},
		{"Why us???", "why_us"},
		{"UPPER case Label", "upper_case_label"},
		{"a  b   c", "a_b_c"},
		{"___weird___", "weird"},
		{"目标", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateFieldName(tt.label), "label %q", tt.label)
	}
}

func TestGenerateFieldNameCapsLength(t *testing.T) {
	long := "this label is long enough that the derived name will definitely exceed fifty characters"
	got := GenerateFieldName(long)
	assert.Len(t, got, 50)
}

func TestBuildSchemaPrependsBaseline(t *testing.T) {
	schema, err := BuildSchema("job-1", []models.FormField{
		{FieldLabel: "Years of Experience", FieldType: models.FieldTypeNumber},
		{FieldLabel: "Resume", FieldType: models.FieldTypeFile},
	})
	require.NoError(t, err)
	require.Len(t, schema, 6)

	assert.Equal(t, "full_name", schema[0].FieldName)
	assert.Equal(t, "email", schema[1].FieldName)
	assert.Equal(t, "linkedin_url", schema[2].FieldName)
	assert.Equal(t, "location", schema[3].FieldName)
	assert.Equal(t, "years_of_experience", schema[4].FieldName)
	assert.Equal(t, "resume", schema[5].FieldName)

	for i, f := range schema {
		assert.Equal(t, i, f.FieldOrder)
		assert.Equal(t, "job-1", f.JobPositionID)
	}
	assert.True(t, schema[0].IsRequired)
	assert.True(t, schema[1].IsRequired)
	assert.False(t, schema[2].IsRequired)
}

func TestBuildSchemaRejectsEmptyLabel(t *testing.T) {
	_, err := BuildSchema("job-1", []models.FormField{
		{FieldLabel: "   ", FieldType: models.FieldTypeText},
	})
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestBuildSchemaRejectsUnusableLabel(t *testing.T) {
	_, err := BuildSchema("job-1", []models.FormField{
		{FieldLabel: "???", FieldType: models.FieldTypeText},
	})
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestBuildSchemaRejectsDuplicateNames(t *testing.T) {
	_, err := BuildSchema("job-1", []models.FormField{
		{FieldLabel: "Cover Letter", FieldType: models.FieldTypeTextarea},
		{FieldLabel: "Cover  Letter!", FieldType: models.FieldTypeText},
	})
	assert.ErrorIs(t, err, ErrDuplicateFieldName)
}

func TestBuildSchemaRejectsBaselineCollision(t *testing.T) {
	_, err := BuildSchema("job-1", []models.FormField{
		{FieldLabel: "Email", FieldType: models.FieldTypeEmail},
	})
	assert.ErrorIs(t, err, ErrDuplicateFieldName)
}

func TestBuildSchemaRejectsInvalidType(t *testing.T) {
	_, err := BuildSchema("job-1", []models.FormField{
		{FieldLabel: "Phone", FieldType: models.FieldType("telephone")},
	})
	assert.ErrorIs(t, err, ErrInvalidFieldType)
}

func TestBuildSchemaSelectOptions(t *testing.T) {
	_, err := BuildSchema("job-1", []models.FormField{
		{FieldLabel: "Seniority", FieldType: models.FieldTypeSelect},
	})
	assert.ErrorIs(t, err, ErrMissingOptions)

	_, err = BuildSchema("job-1", []models.FormField{
		{FieldLabel: "Seniority", FieldType: models.FieldTypeSelect, FieldOptions: []string{"  ", ""}},
	})
	assert.ErrorIs(t, err, ErrMissingOptions)

	schema, err := BuildSchema("job-1", []models.FormField{
		{FieldLabel: "Seniority", FieldType: models.FieldTypeSelect, FieldOptions: []string{" Junior ", "Senior", ""}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Junior", "Senior"}, []string(schema[4].FieldOptions))
}

func TestBuildSchemaClearsOptionsOnNonSelect(t *testing.T) {
	schema, err := BuildSchema("job-1", []models.FormField{
		{FieldLabel: "Notes", FieldType: models.FieldTypeText, FieldOptions: []string{"stale"}},
	})
	require.NoError(t, err)
	assert.Nil(t, schema[4].FieldOptions)
}
