package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
)

// Local writes files under a directory and serves them from a public
// path prefix, e.g. "./upload" served as "/upload".
type Local struct {
	dir        string
	publicPath string
}

func NewLocal(dir, publicPath string) *Local {
	return &Local{dir: dir, publicPath: publicPath}
}

// Dir is the directory files are written to.
func (l *Local) Dir() string {
	return l.dir
}

// PublicPath is the URL prefix the directory is served under.
func (l *Local) PublicPath() string {
	return l.publicPath
}

// Save copies the upload to a uniquely named file.
func (l *Local) Save(ctx context.Context, fileHeader *multipart.FileHeader) (*UploadedFile, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("file header is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(l.dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", l.dir, err)
	}

	newFileName := objectName(fileHeader.Filename)
	dstPath := filepath.Join(l.dir, newFileName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file %s: %w", dstPath, err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return nil, fmt.Errorf("failed to copy uploaded file to %s: %w", dstPath, err)
	}

	return &UploadedFile{
		URL:          path.Join("/", l.publicPath, newFileName),
		DiskType:     "local",
		OriginalName: fileHeader.Filename,
		ModifiedName: newFileName,
		Size:         written,
	}, nil
}
