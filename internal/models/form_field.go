package models

import (
	"time"

	"github.com/lib/pq"
)

// FormField is one question on a job's application form. FieldName is the
// machine-safe key into an application's form_data map, derived from the
// label at creation time and unique within the job's schema.
type FormField struct {
	ID            string         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	JobPositionID string         `gorm:"type:uuid;not null;index;uniqueIndex:idx_form_fields_job_name" json:"job_position_id"`
	FieldName     string         `gorm:"not null;uniqueIndex:idx_form_fields_job_name" json:"field_name"`
	FieldType     FieldType      `gorm:"type:varchar(20);not null" json:"field_type"`
	FieldLabel    string         `gorm:"not null" json:"field_label"`
	FieldOptions  pq.StringArray `gorm:"type:text[]" json:"field_options"` // only for select fields
	IsRequired    bool           `gorm:"default:false" json:"is_required"`
	FieldOrder    int            `gorm:"not null" json:"field_order"`
	CreatedAt     time.Time      `gorm:"default:now()" json:"created_at"`
}
