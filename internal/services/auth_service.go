package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hireboard_backend/internal/auth"
	"hireboard_backend/internal/models"
	"hireboard_backend/internal/repositories"
	"hireboard_backend/internal/services/dto"
	"hireboard_backend/pkg/apperrors"
)

type AuthService struct {
	profileRepo repositories.ProfileRepository
}

func NewAuthService(profileRepo repositories.ProfileRepository) *AuthService {
	return &AuthService{profileRepo: profileRepo}
}

// Register creates an applicant profile. Admin profiles are never
// self-assigned; they are seeded at startup or promoted out of band.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.New(apperrors.CodeValidationFailed, "auth", err.Error(), http.StatusBadRequest)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile := &models.Profile{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         models.UserRoleApplicant,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueToken(profile)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	profile, err := s.profileRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, profile.PasswordHash) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	}

	return s.issueToken(profile)
}

// GetProfile resolves the caller's profile; the role stored here, not the
// token claim, is the source of truth for authorization decisions.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *AuthService) issueToken(profile *models.Profile) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(profile.ID, string(profile.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{AccessToken: token, Profile: profile}, nil
}
