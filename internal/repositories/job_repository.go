package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hireboard_backend/internal/models"
)

var ErrJobNotFound = errors.New("job position not found")

type JobRepository interface {
	// CreateWithFields inserts the job and its form field schema atomically.
	CreateWithFields(ctx context.Context, job *models.JobPosition, fields []models.FormField) error
	FindByID(ctx context.Context, id string) (*models.JobPosition, error)
	// FindByIDWithFields preloads the field schema ordered by field_order.
	FindByIDWithFields(ctx context.Context, id string) (*models.JobPosition, error)
	ListActive(ctx context.Context) ([]models.JobPosition, error)
	ListAll(ctx context.Context) ([]models.JobPosition, error)
	Update(ctx context.Context, job *models.JobPosition) error
	SetActive(ctx context.Context, id string, active bool) error
	// Delete cascades to form fields and applications.
	Delete(ctx context.Context, id string) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepositoryImpl {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) CreateWithFields(ctx context.Context, job *models.JobPosition, fields []models.FormField) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		for i := range fields {
			fields[i].JobPositionID = job.ID
		}
		if len(fields) > 0 {
			if err := tx.Create(&fields).Error; err != nil {
				return err
			}
		}
		job.FormFields = fields
		return nil
	})
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.JobPosition, error) {
	var job models.JobPosition
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDWithFields(ctx context.Context, id string) (*models.JobPosition, error) {
	var job models.JobPosition
	err := r.db.WithContext(ctx).
		Preload("FormFields", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_order ASC, created_at ASC")
		}).
		First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) ListActive(ctx context.Context) ([]models.JobPosition, error) {
	var jobs []models.JobPosition
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListAll(ctx context.Context) ([]models.JobPosition, error) {
	var jobs []models.JobPosition
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Update(ctx context.Context, job *models.JobPosition) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.JobPosition{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_position_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_position_id = ?", id).Delete(&models.FormField{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.JobPosition{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}
