package models

type Profile struct {
	BaseModel
	Email           string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string   `gorm:"not null" json:"-"`
	FullName        string   `json:"full_name"`
	Role            UserRole `gorm:"type:varchar(20);not null;default:'applicant'" json:"role"`
	ProfilePhotoURL *string  `json:"profile_photo_url"`

	// Relations
	Applications []Application `gorm:"foreignKey:ApplicantID" json:"-"`
}
