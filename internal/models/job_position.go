package models

type JobPosition struct {
	BaseModel
	Title          string  `gorm:"not null" json:"title"`
	Description    string  `gorm:"not null" json:"description"`
	Location       *string `json:"location"`
	EmploymentType *string `json:"employment_type"`
	SalaryRange    *string `json:"salary_range"` // free text, parsed heuristically for filtering
	IsActive       bool    `gorm:"default:true" json:"is_active"`
	CreatedBy      string  `gorm:"type:uuid;not null;index" json:"created_by"`

	// Relations
	FormFields   []FormField   `gorm:"foreignKey:JobPositionID;constraint:OnDelete:CASCADE" json:"form_fields,omitempty"`
	Applications []Application `gorm:"foreignKey:JobPositionID;constraint:OnDelete:CASCADE" json:"-"`
}
