package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hireboard_backend/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	// ErrDuplicateApplication surfaces the (job_position_id, applicant_id)
	// unique index. The caller-side "already applied" pre-read races with
	// concurrent submits; this is the layer that actually closes it.
	ErrDuplicateApplication = errors.New("application already exists for this job and applicant")
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id string) (*models.Application, error)
	// FindByIDWithDetails preloads the job position and applicant profile.
	FindByIDWithDetails(ctx context.Context, id string) (*models.Application, error)
	ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID string) (bool, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Application, error)
	// ListAll returns every application in creation-descending order with job
	// and applicant preloaded, for the admin review view.
	ListAll(ctx context.Context) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepositoryImpl {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app *models.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicateApplication
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Postgres unique_violation surfaced without translation.
	return strings.Contains(err.Error(), "duplicate key value")
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByIDWithDetails(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("JobPosition").
		Preload("JobPosition.FormFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_order ASC, created_at ASC")
		}).
		Preload("Applicant").
		First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_position_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) CountByJob(ctx context.Context, jobID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_position_id = ?", jobID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("JobPosition").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Where("job_position_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListAll(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("JobPosition").
		Preload("Applicant").
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
