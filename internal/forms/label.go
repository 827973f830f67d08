package forms

import (
	"fmt"
	"sort"

	"hireboard_backend/internal/models"
)

// LabeledResponse is one (label, value) pair reconstructed for display.
// File answers carry the raw storage reference in Value; callers resolve it
// to a time-limited link before rendering.
type LabeledResponse struct {
	FieldName string `json:"field_name"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	IsFile    bool   `json:"is_file"`
}

// LabelResponses re-joins a persisted response map to its schema. Output
// follows schema field_order; answers whose key has no schema field are
// appended after, labeled by the raw key, in key-sorted order so the result
// is deterministic.
func LabelResponses(formData map[string]any, schema []models.FormField) []LabeledResponse {
	labeled := make([]LabeledResponse, 0, len(formData))
	matched := make(map[string]struct{}, len(formData))

	for _, field := range schema {
		raw, ok := formData[field.FieldName]
		if !ok {
			continue
		}
		matched[field.FieldName] = struct{}{}
		labeled = append(labeled, LabeledResponse{
			FieldName: field.FieldName,
			Label:     field.FieldLabel,
			Value:     displayString(raw),
			IsFile:    field.FieldType == models.FieldTypeFile,
		})
	}

	var orphans []string
	for key := range formData {
		if _, ok := matched[key]; !ok {
			orphans = append(orphans, key)
		}
	}
	sort.Strings(orphans)
	for _, key := range orphans {
		labeled = append(labeled, LabeledResponse{
			FieldName: key,
			Label:     key,
			Value:     displayString(formData[key]),
		})
	}
	return labeled
}

func displayString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
