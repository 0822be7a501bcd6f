package response

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
	"github.com/Diego-EC/questioner-backend/internal/logger"
)

const internalMessage = "Internal server error"

type ErrorResponse struct {
	Status        string      `json:"status"`
	StatusCode    int         `json:"statusCode"`
	Message       string      `json:"message"`
	ErrorMessages interface{} `json:"errorMessages,omitempty"`
}

func GetCallerInfo(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown:0"
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// ApiError sends an immediate error response and aborts further processing
func ApiError(c *gin.Context, statusCode int, message string, errorMessages ...interface{}) {
	apiError(c, GetCallerInfo(2), statusCode, message, "", errorMessages...)
}

// Error maps err onto its HTTP status and writes the error envelope.
// Errors outside the apperror taxonomy become a 500 whose detail is only
// logged.
func Error(c *gin.Context, err error, errorMessages ...interface{}) {
	statusCode, message := Classify(err)
	detail := ""
	if statusCode == http.StatusInternalServerError {
		detail = err.Error()
	}
	apiError(c, GetCallerInfo(2), statusCode, message, detail, errorMessages...)
}

// Classify returns the status code and client-facing message for err.
func Classify(err error) (int, string) {
	var verr *apperror.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, apperror.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, apperror.ErrConstraint):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, internalMessage
	}
}

func apiError(c *gin.Context, caller string, statusCode int, message, detail string, errorMessages ...interface{}) {
	// Get user claims from context if available
	user, _ := c.Get("user")

	fields := []zap.Field{
		zap.Int("statusCode", statusCode),
		zap.String("message", message),
		zap.String("ip", c.ClientIP()),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Any("user", user),
		zap.String("stack", caller),
	}
	if detail != "" {
		fields = append(fields, zap.String("detail", detail))
	}
	logger.ErrorLogger.Error("API Error", fields...)

	errResp := ErrorResponse{
		Status:     "KO",
		StatusCode: statusCode,
		Message:    message,
	}

	if len(errorMessages) > 0 && errorMessages[0] != nil {
		errResp.ErrorMessages = errorMessages[0]
		// Log additional error messages
		logger.ErrorLogger.Error("Additional error details",
			zap.Any("errorMessages", errorMessages[0]))
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}
