package forms

import (
	"sort"
)

// ResponseBuilder is a renderer's working copy of the response map, keyed by
// field_name. File fields go through an uploading sub-state: while an upload
// for a field is pending the whole response set is not submittable.
type ResponseBuilder struct {
	values  map[string]any
	pending map[string]struct{}
}

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{
		values:  make(map[string]any),
		pending: make(map[string]struct{}),
	}
}

// Set records a typed value for a non-file field.
func (b *ResponseBuilder) Set(fieldName string, value any) {
	b.values[fieldName] = value
}

// SetFileUploading marks a file field as mid-upload. Any previous answer for
// the field is discarded until the upload resolves.
func (b *ResponseBuilder) SetFileUploading(fieldName string) {
	b.pending[fieldName] = struct{}{}
	delete(b.values, fieldName)
}

// SetFileReference resolves a pending upload: the answer value becomes the
// storage reference, never the raw file.
func (b *ResponseBuilder) SetFileReference(fieldName, reference string) {
	delete(b.pending, fieldName)
	b.values[fieldName] = reference
}

// ClearFile explicitly removes a file answer, resolving any pending state.
func (b *ResponseBuilder) ClearFile(fieldName string) {
	delete(b.pending, fieldName)
	delete(b.values, fieldName)
}

func (b *ResponseBuilder) HasPending() bool {
	return len(b.pending) > 0
}

// Pending returns the field names with uploads still in flight, sorted for
// deterministic reporting.
func (b *ResponseBuilder) Pending() []string {
	names := make([]string, 0, len(b.pending))
	for name := range b.pending {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Values returns a snapshot of the collected response map.
func (b *ResponseBuilder) Values() map[string]any {
	out := make(map[string]any, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

// FromSubmission rebuilds a ResponseBuilder from a wire-level submission:
// the collected values plus the field names the client reports as still
// uploading.
func FromSubmission(values map[string]any, pendingUploads []string) *ResponseBuilder {
	b := NewResponseBuilder()
	for k, v := range values {
		b.values[k] = v
	}
	for _, name := range pendingUploads {
		b.pending[name] = struct{}{}
	}
	return b
}
