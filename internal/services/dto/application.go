package dto

import (
	"hireboard_backend/internal/forms"
	"hireboard_backend/internal/models"
)

// SubmitApplicationRequest carries the renderer's collected response map.
// PendingUploads lists file fields whose upload has not resolved yet; a
// non-empty list blocks submission.
type SubmitApplicationRequest struct {
	FormData        map[string]any `json:"form_data" validate:"required"`
	ProfilePhotoURL *string        `json:"profile_photo_url"`
	PendingUploads  []string       `json:"pending_uploads"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ApplicationDetail joins an application to its schema for display:
// labeled (label, value) pairs in form order, file answers resolved to
// time-limited links.
type ApplicationDetail struct {
	Application *models.Application     `json:"application"`
	Responses   []forms.LabeledResponse `json:"responses"`
}
