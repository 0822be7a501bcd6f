package storage

import (
	"io"
	"mime/multipart"
	"net/http"
)

// IsImageFile checks if the provided file header represents an image based on its content type.
func IsImageFile(fileHeader *multipart.FileHeader) bool {
	return DetectContentType(fileHeader) != ""
}

// DetectContentType sniffs the first 512 bytes and returns the image MIME
// type, or "" when the file is not a supported image.
func DetectContentType(fileHeader *multipart.FileHeader) string {
	if fileHeader == nil {
		return ""
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ""
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return ""
	}

	contentType := http.DetectContentType(buffer[:n])

	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return contentType
	default:
		return ""
	}
}
