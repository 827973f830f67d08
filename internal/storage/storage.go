package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// SignedURLExpiry is the lifetime of every minted access link.
const SignedURLExpiry = 3600 * time.Second

// Storage is the object-storage boundary: application file uploads go in,
// public or time-limited URLs come out.
type Storage interface {
	// Save stores a file at the given bucket-relative path.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a file from the given path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path.
	Delete(ctx context.Context, path string) error

	// GetURL returns a public URL for the file.
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a temporary signed URL for private files.
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3-compatible stores
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // for R2/Supabase or custom S3
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// RelativePath normalizes a stored file reference to a bucket-relative path.
// References may be persisted either as relative paths or as full public
// URLs; the known public base prefix is stripped to recover the former.
func RelativePath(reference, baseURL string) string {
	if baseURL != "" && strings.HasPrefix(reference, baseURL) {
		reference = strings.TrimPrefix(reference, baseURL)
	}
	return strings.TrimPrefix(reference, "/")
}
