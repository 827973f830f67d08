package handlers

import (
	"hireboard_backend/internal/services"
	"hireboard_backend/internal/validator"
)

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	Auth         *AuthHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
	Uploads      *UploadHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.Auth),
		Jobs:         NewJobHandler(base, sc.Jobs, sc.Applications),
		Applications: NewApplicationHandler(base, sc.Applications),
		Uploads:      NewUploadHandler(base, sc.Uploads),
	}
}
