// Package storage stores uploaded files and returns a URL for them.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Diego-EC/questioner-backend/internal/config"
)

// UploadedFile represents the result of a file upload operation
type UploadedFile struct {
	URL          string // Publicly resolvable URL of the stored file
	DiskType     string // Type of storage ("local", "s3")
	OriginalName string // Original filename from the upload
	ModifiedName string // New filename used for storage
	Size         int64  // Bytes written
}

// BlobStore persists one uploaded file.
type BlobStore interface {
	Save(ctx context.Context, fileHeader *multipart.FileHeader) (*UploadedFile, error)
}

// New builds the blob store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (BlobStore, error) {
	switch cfg.Driver {
	case "local":
		return NewLocal(cfg.UploadDir, cfg.PublicPath), nil
	case "s3":
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

// objectName generates a unique name that keeps the lower-cased extension.
func objectName(original string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(original))
}
