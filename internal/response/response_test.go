package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{apperror.Missing("email"), http.StatusBadRequest, "missing email parameter"},
		{fmt.Errorf("wrap: %w", apperror.Invalid("id_answer", "x")), http.StatusBadRequest, "invalid id_answer parameter: x"},
		{apperror.Unauthorized("bad username or password"), http.StatusUnauthorized, "bad username or password"},
		{apperror.Forbidden("admin role required"), http.StatusForbidden, "admin role required"},
		{apperror.NotFound("question"), http.StatusNotFound, "question not found"},
		{apperror.Conflict("email taken"), http.StatusConflict, "email taken"},
		{errors.New("dial tcp: refused"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		status, message := Classify(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.message, message)
	}
}

func TestErrorWritesEnvelopeWithoutLeakingDetail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/questions", nil)

	Error(c, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, c.IsAborted())
	assert.NotContains(t, w.Body.String(), "connection reset")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Status: "KO", StatusCode: 500, Message: "Internal server error"}, body)
}

func TestErrorIncludesErrorMessages(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/answer", nil)

	Error(c, apperror.Missing("id_question"), []string{"id_question", "id_user"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"KO","statusCode":400,"message":"missing id_question parameter","errorMessages":["id_question","id_user"]}`, w.Body.String())
}

func TestSendResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendResponse(c, http.StatusOK, "Question added", gin.H{"question": gin.H{"id": 1}})

	assert.JSONEq(t, `{"status":"OK","msg":"Question added","question":{"id":1}}`, w.Body.String())
}
