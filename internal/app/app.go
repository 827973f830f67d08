package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hireboard_backend/database"
	"hireboard_backend/internal/auth"
	"hireboard_backend/internal/config"
	"hireboard_backend/internal/handlers"
	"hireboard_backend/internal/logger"
	"hireboard_backend/internal/middleware"
	"hireboard_backend/internal/models"
	"hireboard_backend/internal/repositories"
	"hireboard_backend/internal/routes"
	"hireboard_backend/internal/services"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	serviceContainer, err := services.NewServiceContainer(gormDB, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	appHandlers := handlers.NewAppHandlers(serviceContainer)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter, nil
}

// seedFirstAdmin guarantees one admin account exists. Registration never
// grants the admin role, so the first admin has to come from configuration.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin email or password not configured. Skipping admin seeding.")
		return nil
	}

	ctx := context.Background()
	profileRepo := repositories.NewProfileRepository(db)

	existing, err := profileRepo.FindByEmail(ctx, cfg.Admin.Email)
	if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.Profile{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		FullName:     cfg.Admin.FullName,
		Role:         models.UserRoleAdmin,
	}
	if err := profileRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Seeded first admin user", "email", cfg.Admin.Email)
	return nil
}
