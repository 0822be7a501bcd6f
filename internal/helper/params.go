package helper

import (
	"mime/multipart"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
)

// ParamID parses a positive integer path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, apperror.Invalid(name, "must be a positive integer")
	}
	return uint(id), nil
}

// FormID parses a positive integer multipart form field.
func FormID(c *gin.Context, name string) (uint, error) {
	raw := c.PostForm(name)
	if raw == "" {
		return 0, apperror.Missing(name)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperror.Invalid(name, "must be a positive integer")
	}
	return uint(id), nil
}

// FormFiles returns every file of a multipart request whatever its field
// name, ordered by field name.
func FormFiles(c *gin.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, apperror.Invalid("files", "expected a multipart form")
	}

	keys := make([]string, 0, len(form.File))
	for k := range form.File {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var files []*multipart.FileHeader
	for _, k := range keys {
		files = append(files, form.File[k]...)
	}
	return files, nil
}
