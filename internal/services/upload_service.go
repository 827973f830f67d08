package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"hireboard_backend/internal/storage"
	"hireboard_backend/pkg/apperrors"
)

type UploadService struct {
	store        storage.Storage
	baseURL      string
	maxSize      int64
	allowedTypes []string
}

func NewUploadService(store storage.Storage, baseURL string, maxSize int64, allowedTypes []string) *UploadService {
	return &UploadService{
		store:        store,
		baseURL:      baseURL,
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
	}
}

// UploadResult describes a stored file: the bucket-relative path persisted
// in form_data and the public URL handed back to the client.
type UploadResult struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// SaveApplicationFile stores one uploaded file under the applicant's prefix
// with a random name, keeping the original extension.
func (s *UploadService) SaveApplicationFile(ctx context.Context, userID string, header *multipart.FileHeader) (*UploadResult, error) {
	if header.Size > s.maxSize {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("File exceeds the %d MB size limit", s.maxSize/(1024*1024)))
	}

	contentType := header.Header.Get("Content-Type")
	if !s.typeAllowed(contentType) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("File type %s is not allowed", contentType))
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := fmt.Sprintf("applications/%s/%s%s", userID, uuid.NewString(), ext)

	if err := s.store.Save(ctx, path, file, contentType); err != nil {
		return nil, apperrors.ErrStorageUnavailable(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.ErrStorageUnavailable(err)
	}

	return &UploadResult{Path: path, URL: url}, nil
}

// Open streams a stored file back, for the local backend's file endpoint.
func (s *UploadService) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	rc, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return rc, nil
}

func (s *UploadService) typeAllowed(contentType string) bool {
	for _, t := range s.allowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
