package dto

import (
	"hireboard_backend/internal/forms"
	"hireboard_backend/internal/listing"
	"hireboard_backend/internal/models"
)

// FieldDefRequest is a schema author's definition of one custom field. The
// machine-safe field_name is derived from the label server-side.
type FieldDefRequest struct {
	FieldLabel   string   `json:"field_label" validate:"required"`
	FieldType    string   `json:"field_type" validate:"required,oneof=text email tel number date textarea select file"`
	FieldOptions []string `json:"field_options"`
	IsRequired   bool     `json:"is_required"`
	FieldOrder   int      `json:"field_order"`
}

type CreateJobRequest struct {
	Title          string            `json:"title" validate:"required,min=2"`
	Description    string            `json:"description" validate:"required"`
	Location       *string           `json:"location"`
	EmploymentType *string           `json:"employment_type"`
	SalaryRange    *string           `json:"salary_range"`
	Fields         []FieldDefRequest `json:"fields" validate:"dive"`
}

type UpdateJobRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Location       *string `json:"location"`
	EmploymentType *string `json:"employment_type"`
	SalaryRange    *string `json:"salary_range"`
}

// JobDetail is a job plus its application form contracts, ready to render.
type JobDetail struct {
	Job    *models.JobPosition `json:"job"`
	Schema []models.FormField  `json:"schema"`
	Form   []forms.InputSpec   `json:"form"`
}

// ListQuery binds the full filter criterion set plus the page number.
type ListQuery struct {
	Search          string   `form:"search"`
	Status          string   `form:"status"`
	Location        string   `form:"location"`
	EmploymentTypes []string `form:"employment_type[]"`
	SalaryMin       *int     `form:"salary_min"`
	SalaryMax       *int     `form:"salary_max"`
	Sort            string   `form:"sort"`
	Page            int      `form:"page"`
}

func (q ListQuery) Filters() listing.Filters {
	f := listing.NewFilters()
	f.SearchQuery = q.Search
	if q.Status != "" {
		f.StatusFilter = q.Status
	}
	if q.Location != "" {
		f.LocationFilter = q.Location
	}
	f.EmploymentTypes = q.EmploymentTypes
	f.SalaryMin = q.SalaryMin
	f.SalaryMax = q.SalaryMax
	if q.Sort != "" {
		f.SortBy = listing.SortOption(q.Sort)
	}
	return f
}

// ListResponse is one filtered, sorted, paginated page plus the distinct
// values the filter UI offers.
type ListResponse struct {
	Items           []listing.Item `json:"items"`
	Total           int            `json:"total"`
	Page            int            `json:"page"`
	TotalPages      int            `json:"total_pages"`
	ActiveFilters   int            `json:"active_filters"`
	Locations       []string       `json:"locations"`
	EmploymentTypes []string       `json:"employment_types"`
}
