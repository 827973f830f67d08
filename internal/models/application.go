package models

import (
	"gorm.io/datatypes"
)

// Application is one applicant's submitted response set for one job
// position. FormData maps field_name to the answer value: a string for all
// field types except file, where it holds the storage reference or URL.
// The (job_position_id, applicant_id) pair is unique at the storage layer.
type Application struct {
	BaseModel
	JobPositionID   string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"job_position_id"`
	ApplicantID     string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant;index" json:"applicant_id"`
	Status          ApplicationStatus `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`
	ProfilePhotoURL *string           `json:"profile_photo_url"`
	FormData        datatypes.JSONMap `gorm:"type:jsonb" json:"form_data"`

	// Relations
	JobPosition *JobPosition `gorm:"foreignKey:JobPositionID" json:"job_position,omitempty"`
	Applicant   *Profile     `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}
