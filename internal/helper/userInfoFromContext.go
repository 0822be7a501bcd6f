package helper

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
)

// UserInfo represents the user information from JWT claims
type UserInfo struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GetUserInfoFromContext extracts complete user info from JWT claims in Gin context
func GetUserInfoFromContext(c *gin.Context) (*UserInfo, error) {
	// Get user claims from context
	userData, exists := c.Get("user")
	if !exists {
		return nil, apperror.Unauthorized("user not authenticated")
	}

	// Convert to JWT claims
	claims, ok := userData.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Unauthorized("invalid user data format")
	}

	// numbers decode from JSON as float64
	userIDFloat, ok := claims["id"].(float64)
	if !ok {
		return nil, apperror.Unauthorized("invalid user ID format")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, apperror.Unauthorized("invalid email format")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, apperror.Unauthorized("invalid role format")
	}

	return &UserInfo{
		ID:    uint(userIDFloat),
		Email: email,
		Role:  role,
	}, nil
}
