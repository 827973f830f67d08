// Package listing implements the pure, in-memory filter/sort/paginate engine
// used by both the job board and the application review views. Every stage
// is a pure function over an already-fetched slice; nothing here touches the
// store.
package listing

import (
	"time"

	"hireboard_backend/internal/models"
)

// Item is the denormalized row the engine operates on: a job position's
// display data plus, for application rows, the review status. Job rows leave
// Status empty; the status filter treats that as "not applicable" and lets
// the row pass.
type Item struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	SalaryRange    string    `json:"salary_range"`
	Status         string    `json:"status,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromJob(j models.JobPosition) Item {
	return Item{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		Location:       deref(j.Location),
		EmploymentType: deref(j.EmploymentType),
		SalaryRange:    deref(j.SalaryRange),
		CreatedAt:      j.CreatedAt,
	}
}

func FromJobs(jobs []models.JobPosition) []Item {
	items := make([]Item, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, FromJob(j))
	}
	return items
}

// FromApplication flattens an application row over its job position's data.
// The row keeps the application's own id and status but filters and sorts on
// the job's fields, mirroring the list views.
func FromApplication(a models.Application) Item {
	item := Item{
		ID:        a.ID,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
	if a.JobPosition != nil {
		item.Title = a.JobPosition.Title
		item.Description = a.JobPosition.Description
		item.Location = deref(a.JobPosition.Location)
		item.EmploymentType = deref(a.JobPosition.EmploymentType)
		item.SalaryRange = deref(a.JobPosition.SalaryRange)
	}
	return item
}

func FromApplications(apps []models.Application) []Item {
	items := make([]Item, 0, len(apps))
	for _, a := range apps {
		items = append(items, FromApplication(a))
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
