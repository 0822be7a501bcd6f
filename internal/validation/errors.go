// Package validation declares the request bodies of the API and turns
// binding failures into validation errors.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
)

func init() {
	// report json names ("id_user") rather than Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonName)
	}
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// FieldError describes one rejected field, for the errorMessages list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Translate converts an error from gin's ShouldBind* into an
// apperror.ValidationError for the first offending field.
func Translate(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldError(verrs[0])
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperror.Invalid(typeErr.Field, "expected "+typeErr.Type.String())
	}
	if errors.Is(err, io.EOF) {
		return apperror.Invalid("body", "request body is empty")
	}
	return apperror.Invalid("body", "malformed JSON")
}

// Details lists every failed field of a binding error, or nil.
func Details(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{Field: fe.Field(), Message: fieldError(fe).Error()})
	}
	return details
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return apperror.Missing(fe.Field())
	case "email":
		return apperror.Invalid(fe.Field(), "must be an email address")
	case "max":
		return apperror.Invalid(fe.Field(), fmt.Sprintf("must be at most %s characters", fe.Param()))
	case "min":
		return apperror.Invalid(fe.Field(), fmt.Sprintf("must be at least %s", fe.Param()))
	default:
		return apperror.Invalid(fe.Field(), "failed "+fe.Tag())
	}
}
