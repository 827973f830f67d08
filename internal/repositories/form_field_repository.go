package repositories

import (
	"context"

	"gorm.io/gorm"

	"hireboard_backend/internal/models"
)

type FormFieldRepository interface {
	ListByJob(ctx context.Context, jobID string) ([]models.FormField, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
	// ReplaceForJob swaps the whole field set atomically. Callers enforce the
	// schema-lock rule before calling.
	ReplaceForJob(ctx context.Context, jobID string, fields []models.FormField) error
}

type FormFieldRepositoryImpl struct {
	db *gorm.DB
}

func NewFormFieldRepository(db *gorm.DB) *FormFieldRepositoryImpl {
	return &FormFieldRepositoryImpl{db: db}
}

func (r *FormFieldRepositoryImpl) ListByJob(ctx context.Context, jobID string) ([]models.FormField, error) {
	var fields []models.FormField
	err := r.db.WithContext(ctx).
		Where("job_position_id = ?", jobID).
		Order("field_order ASC, created_at ASC").
		Find(&fields).Error
	return fields, err
}

func (r *FormFieldRepositoryImpl) CountByJob(ctx context.Context, jobID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.FormField{}).
		Where("job_position_id = ?", jobID).
		Count(&count).Error
	return count, err
}

func (r *FormFieldRepositoryImpl) ReplaceForJob(ctx context.Context, jobID string, fields []models.FormField) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_position_id = ?", jobID).Delete(&models.FormField{}).Error; err != nil {
			return err
		}
		for i := range fields {
			fields[i].JobPositionID = jobID
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Create(&fields).Error
	})
}
