package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseBuilderFileLifecycle(t *testing.T) {
	b := NewResponseBuilder()
	b.Set("full_name", "Ada Lovelace")

	b.SetFileUploading("resume")
	assert.True(t, b.HasPending())
	assert.Equal(t, []string{"resume"}, b.Pending())
	assert.NotContains(t, b.Values(), "resume")

	b.SetFileReference("resume", "applications/u1/abc.pdf")
	assert.False(t, b.HasPending())
	assert.Equal(t, "applications/u1/abc.pdf", b.Values()["resume"])
}

func TestResponseBuilderReuploadDiscardsOldReference(t *testing.T) {
	b := NewResponseBuilder()
	b.SetFileReference("resume", "applications/u1/old.pdf")

	b.SetFileUploading("resume")
	assert.True(t, b.HasPending())
	assert.NotContains(t, b.Values(), "resume")
}

func TestResponseBuilderClearFile(t *testing.T) {
	b := NewResponseBuilder()
	b.SetFileUploading("resume")
	b.ClearFile("resume")

	assert.False(t, b.HasPending())
	assert.NotContains(t, b.Values(), "resume")
}

func TestResponseBuilderPendingSorted(t *testing.T) {
	b := NewResponseBuilder()
	b.SetFileUploading("portfolio")
	b.SetFileUploading("cover_letter")
	b.SetFileUploading("resume")

	assert.Equal(t, []string{"cover_letter", "portfolio", "resume"}, b.Pending())
}

func TestResponseBuilderValuesIsSnapshot(t *testing.T) {
	b := NewResponseBuilder()
	b.Set("email", "ada@example.com")

	snap := b.Values()
	snap["email"] = "mutated"
	assert.Equal(t, "ada@example.com", b.Values()["email"])
}

func TestFromSubmission(t *testing.T) {
	b := FromSubmission(map[string]any{"full_name": "Ada"}, []string{"resume"})

	assert.True(t, b.HasPending())
	assert.Equal(t, []string{"resume"}, b.Pending())
	assert.Equal(t, "Ada", b.Values()["full_name"])

	b2 := FromSubmission(nil, nil)
	assert.False(t, b2.HasPending())
	assert.Empty(t, b2.Values())
}
