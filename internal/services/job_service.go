package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hireboard_backend/internal/forms"
	"hireboard_backend/internal/listing"
	"hireboard_backend/internal/models"
	"hireboard_backend/internal/repositories"
	"hireboard_backend/internal/services/dto"
	"hireboard_backend/pkg/apperrors"
)

type JobService struct {
	jobRepo   repositories.JobRepository
	fieldRepo repositories.FormFieldRepository
	appRepo   repositories.ApplicationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	fieldRepo repositories.FormFieldRepository,
	appRepo repositories.ApplicationRepository,
) *JobService {
	return &JobService{jobRepo: jobRepo, fieldRepo: fieldRepo, appRepo: appRepo}
}

// CreateJob persists a job position together with its normalized form
// schema. The baseline fields are always prepended; custom fields get
// machine-safe names derived from their labels.
func (s *JobService) CreateJob(ctx context.Context, creatorID string, req *dto.CreateJobRequest) (*dto.JobDetail, error) {
	job := &models.JobPosition{
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		SalaryRange:    req.SalaryRange,
		IsActive:       true,
		CreatedBy:      creatorID,
	}

	schema, err := forms.BuildSchema("", fieldsFromRequest(req.Fields))
	if err != nil {
		return nil, schemaError(err)
	}

	if err := s.jobRepo.CreateWithFields(ctx, job, schema); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetJob(ctx, job.ID)
}

// GetJob returns the job, its ordered schema and the render contracts the
// application form is built from.
func (s *JobService) GetJob(ctx context.Context, id string) (*dto.JobDetail, error) {
	job, err := s.jobRepo.FindByIDWithFields(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobDetail{
		Job:    job,
		Schema: job.FormFields,
		Form:   forms.RenderContracts(job.FormFields),
	}, nil
}

// ListJobs runs the filter pipeline over the active positions and returns
// one page. When includeInactive is set (admin view) closed positions are
// listed too.
func (s *JobService) ListJobs(ctx context.Context, query dto.ListQuery, includeInactive bool) (*dto.ListResponse, error) {
	var (
		jobs []models.JobPosition
		err  error
	)
	if includeInactive {
		jobs, err = s.jobRepo.ListAll(ctx)
	} else {
		jobs, err = s.jobRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := listing.FromJobs(jobs)
	return buildListResponse(items, query), nil
}

// UpdateJob applies a partial update to the job's own attributes. The form
// schema is managed separately through ReplaceSchema.
func (s *JobService) UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*dto.JobDetail, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = req.Location
	}
	if req.EmploymentType != nil {
		job.EmploymentType = req.EmploymentType
	}
	if req.SalaryRange != nil {
		job.SalaryRange = req.SalaryRange
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.GetJob(ctx, id)
}

// ReplaceSchema swaps the custom part of a job's form schema. Once the job
// has received applications the schema is locked so stored form_data keys
// keep matching the fields they were submitted against.
func (s *JobService) ReplaceSchema(ctx context.Context, jobID string, fields []dto.FieldDefRequest) (*dto.JobDetail, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	count, err := s.appRepo.CountByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count > 0 {
		return nil, apperrors.ErrSchemaLocked()
	}

	schema, err := forms.BuildSchema(jobID, fieldsFromRequest(fields))
	if err != nil {
		return nil, schemaError(err)
	}

	if err := s.fieldRepo.ReplaceForJob(ctx, jobID, schema); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.GetJob(ctx, jobID)
}

// SetActive opens or closes a position for new applications.
func (s *JobService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.jobRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteJob removes the position with its schema and applications.
func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func fieldsFromRequest(defs []dto.FieldDefRequest) []models.FormField {
	fields := make([]models.FormField, 0, len(defs))
	for _, d := range defs {
		fields = append(fields, models.FormField{
			FieldLabel:   d.FieldLabel,
			FieldType:    models.FieldType(d.FieldType),
			FieldOptions: d.FieldOptions,
			IsRequired:   d.IsRequired,
			FieldOrder:   d.FieldOrder,
		})
	}
	return fields
}

func schemaError(err error) error {
	return apperrors.New(apperrors.CodeValidationFailed, "job", err.Error(), http.StatusBadRequest)
}

// buildListResponse runs the shared filter, sort and paginate pipeline and
// collects the distinct filter values from the unfiltered set.
func buildListResponse(items []listing.Item, query dto.ListQuery) *dto.ListResponse {
	filters := query.Filters()

	locations := listing.ExtractUniqueLocations(items)
	employmentTypes := listing.ExtractUniqueEmploymentTypes(items)

	filtered := listing.Apply(items, filters)
	total := len(filtered)
	page := listing.ClampPage(query.Page, total)

	return &dto.ListResponse{
		Items:           listing.Paginate(filtered, page),
		Total:           total,
		Page:            page,
		TotalPages:      listing.TotalPages(total),
		ActiveFilters:   filters.ActiveCount(),
		Locations:       locations,
		EmploymentTypes: employmentTypes,
	}
}
