package services

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/datatypes"

	"hireboard_backend/internal/forms"
	"hireboard_backend/internal/listing"
	"hireboard_backend/internal/logger"
	"hireboard_backend/internal/models"
	"hireboard_backend/internal/notify"
	"hireboard_backend/internal/repositories"
	"hireboard_backend/internal/services/dto"
	"hireboard_backend/internal/storage"
	"hireboard_backend/pkg/apperrors"
)

type ApplicationService struct {
	appRepo     repositories.ApplicationRepository
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
	store       storage.Storage
	storeBase   string
	notifier    notify.Notifier
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
	storeBaseURL string,
	notifier notify.Notifier,
) *ApplicationService {
	return &ApplicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		store:       store,
		storeBase:   storeBaseURL,
		notifier:    notifier,
	}
}

// Submit files an application against an active job. Submission is refused
// while any file upload is still pending, when a required field is empty,
// and when the applicant has already applied to this job.
func (s *ApplicationService) Submit(ctx context.Context, jobID, applicantID string, builder *forms.ResponseBuilder, photoURL *string) (*models.Application, error) {
	job, err := s.jobRepo.FindByIDWithFields(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsActive {
		return nil, apperrors.ErrInvalidOperation("application", "This position is no longer accepting applications")
	}

	if builder.HasPending() {
		return nil, apperrors.ErrUploadInProgress(builder.Pending())
	}

	values := builder.Values()
	if err := forms.ValidateResponses(job.FormFields, values); err != nil {
		var missing *forms.MissingRequiredFieldError
		if errors.As(err, &missing) {
			return nil, apperrors.ErrMissingRequiredField(missing.Field.FieldLabel)
		}
		return nil, apperrors.New(apperrors.CodeValidationFailed, "application", err.Error(), http.StatusBadRequest)
	}

	app := &models.Application{
		JobPositionID:   jobID,
		ApplicantID:     applicantID,
		Status:          models.ApplicationStatusSubmitted,
		ProfilePhotoURL: photoURL,
		FormData:        datatypes.JSONMap(values),
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if photoURL != nil && *photoURL != "" {
		if err := s.profileRepo.UpdatePhotoURL(ctx, applicantID, *photoURL); err != nil {
			logger.CtxWarn(ctx, "failed to update profile photo", "error", err)
		}
	}

	return app, nil
}

// HasApplied reports whether the applicant already has an application for
// the job, so the client can disable the form up front.
func (s *ApplicationService) HasApplied(ctx context.Context, jobID, applicantID string) (bool, error) {
	applied, err := s.appRepo.ExistsByJobAndApplicant(ctx, jobID, applicantID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return applied, nil
}

// ListMine returns the caller's applications run through the filter
// pipeline, flattened over their job positions.
func (s *ApplicationService) ListMine(ctx context.Context, applicantID string, query dto.ListQuery) (*dto.ListResponse, error) {
	apps, err := s.appRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildListResponse(listing.FromApplications(apps), query), nil
}

// ListAll returns every application for the admin review board.
func (s *ApplicationService) ListAll(ctx context.Context, query dto.ListQuery) (*dto.ListResponse, error) {
	apps, err := s.appRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildListResponse(listing.FromApplications(apps), query), nil
}

// ListByJob returns the raw applications for one position.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// GetDetails renders one application for review: the stored answers labeled
// in schema order, with file answers resolved to time-limited signed URLs.
func (s *ApplicationService) GetDetails(ctx context.Context, id string) (*dto.ApplicationDetail, error) {
	app, err := s.appRepo.FindByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	var schema []models.FormField
	if app.JobPosition != nil {
		schema = app.JobPosition.FormFields
	}

	responses := forms.LabelResponses(app.FormData, schema)
	for i := range responses {
		if !responses[i].IsFile {
			continue
		}
		ref := responses[i].Value
		if ref == "" {
			continue
		}
		rel := storage.RelativePath(ref, s.storeBase)
		signed, err := s.store.GetSignedURL(ctx, rel, storage.SignedURLExpiry)
		if err != nil {
			logger.CtxWarn(ctx, "failed to sign file url", "path", rel, "error", err)
			continue
		}
		responses[i].Value = signed
	}

	return &dto.ApplicationDetail{Application: app, Responses: responses}, nil
}

// SetStatus moves an application to any status in the pipeline and notifies
// the applicant. Notification failure never fails the transition.
func (s *ApplicationService) SetStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidApplicationStatus(string(status))
	}

	if err := s.appRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	app, err := s.appRepo.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if app.Applicant != nil && app.JobPosition != nil {
		change := notify.StatusChange{
			To:            app.Applicant.Email,
			ApplicantName: app.Applicant.FullName,
			JobTitle:      app.JobPosition.Title,
			Status:        status,
		}
		go func() {
			if err := s.notifier.StatusChanged(change); err != nil {
				logger.Warn("failed to send status notification", "application_id", id, "error", err)
			}
		}()
	}

	return app, nil
}
