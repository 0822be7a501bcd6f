// Package middleware holds the gin middleware shared by every route group.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
	"github.com/Diego-EC/questioner-backend/internal/auth"
	"github.com/Diego-EC/questioner-backend/internal/helper"
	"github.com/Diego-EC/questioner-backend/internal/model"
	"github.com/Diego-EC/questioner-backend/internal/response"
)

// RequireAuth verifies the bearer token and stores its claims under "user".
func RequireAuth(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			response.Error(c, apperror.Unauthorized("missing authorization header"))
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RequireAdmin lets only tokens carrying the Admin role through. It must
// run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := helper.GetUserInfoFromContext(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		if info.Role != model.RoleAdmin {
			response.Error(c, apperror.Forbidden("admin role required"))
			return
		}
		c.Next()
	}
}
