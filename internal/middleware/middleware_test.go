package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diego-EC/questioner-backend/internal/auth"
	"github.com/Diego-EC/questioner-backend/internal/helper"
	"github.com/Diego-EC/questioner-backend/internal/model"
	"github.com/Diego-EC/questioner-backend/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "KO", body.Status)
	return body.Message
}

func TestRequireAuthAndAdmin(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	r := gin.New()
	r.GET("/me", RequireAuth(tokens), func(c *gin.Context) {
		info, err := helper.GetUserInfoFromContext(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, info)
	})
	r.GET("/admin", RequireAuth(tokens), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	user := &model.User{Base: model.Base{ID: 5}, Email: "ana@x.com", Role: &model.Role{Name: model.RoleUser}}
	admin := &model.User{Base: model.Base{ID: 1}, Email: "root@x.com", Role: &model.Role{Name: model.RoleAdmin}}
	userToken, err := tokens.Issue(user)
	require.NoError(t, err)
	adminToken, err := tokens.Issue(admin)
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing authorization header", message(t, w))

	w = do(r, http.MethodGet, "/me", "", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid token", message(t, w))

	w = do(r, http.MethodGet, "/me", "", map[string]string{"Authorization": "Bearer " + userToken})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":5,"email":"ana@x.com","role":"User"}`, w.Body.String())

	w = do(r, http.MethodGet, "/admin", "", map[string]string{"Authorization": "Bearer " + userToken})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodGet, "/admin", "", map[string]string{"Authorization": "Bearer " + adminToken})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestValidate(t *testing.T) {
	r := gin.New()
	r.POST("/login", Validate[validation.LoginRequest](), func(c *gin.Context) {
		req, err := helper.GetValidatedFromContext[validation.LoginRequest](c)
		require.NoError(t, err)
		c.String(http.StatusOK, req.Email)
	})

	w := do(r, http.MethodPost, "/login", `{"email":"ana@x.com","password":"p"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana@x.com", w.Body.String())

	w = do(r, http.MethodPost, "/login", `{"email":"ana@x.com"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing password parameter", message(t, w))

	w = do(r, http.MethodPost, "/login", `{"email":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/login", `{"email":1,"password":"p"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecoveryWritesEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaput") })

	w := do(r, http.MethodGet, "/boom", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", message(t, w))
	assert.NotContains(t, w.Body.String(), "kaput")
}

func TestTimeoutSetsDeadline(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(time.Second), RequestLogger())
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	w := do(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
