package services

import (
	"gorm.io/gorm"

	"hireboard_backend/internal/config"
	"hireboard_backend/internal/notify"
	"hireboard_backend/internal/repositories"
	"hireboard_backend/internal/storage"
)

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	Auth         *AuthService
	Jobs         *JobService
	Applications *ApplicationService
	Uploads      *UploadService
}

// NewServiceContainer wires the repositories, storage backend and notifier
// into the service layer.
func NewServiceContainer(db *gorm.DB, cfg *config.Config) (*ServiceContainer, error) {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		return nil, err
	}

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.SMTP.Host != "" {
		notifier = notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromEmail: cfg.SMTP.FromEmail,
			FromName:  cfg.SMTP.FromName,
		})
	}

	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	fieldRepo := repositories.NewFormFieldRepository(db)
	appRepo := repositories.NewApplicationRepository(db)

	return &ServiceContainer{
		Auth:         NewAuthService(profileRepo),
		Jobs:         NewJobService(jobRepo, fieldRepo, appRepo),
		Applications: NewApplicationService(appRepo, jobRepo, profileRepo, store, cfg.Storage.BaseURL, notifier),
		Uploads:      NewUploadService(store, cfg.Storage.BaseURL, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes),
	}, nil
}
