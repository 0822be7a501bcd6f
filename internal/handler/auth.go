package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Diego-EC/questioner-backend/internal/auth"
	"github.com/Diego-EC/questioner-backend/internal/helper"
	"github.com/Diego-EC/questioner-backend/internal/repository"
	"github.com/Diego-EC/questioner-backend/internal/response"
	"github.com/Diego-EC/questioner-backend/internal/validation"
)

type AuthHandler struct {
	auth  *auth.Service
	users *repository.Users
}

func NewAuthHandler(authService *auth.Service, users *repository.Users) *AuthHandler {
	return &AuthHandler{auth: authService, users: users}
}

// Login exchanges email and password for an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	req, err := helper.GetValidatedFromContext[validation.LoginRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "", gin.H{"access_token": token, "user": user})
}

// Logout is stateless; clients discard their token.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.SendResponse(c, http.StatusOK, "", nil)
}

// CheckProtected returns the user the bearer token belongs to.
func (h *AuthHandler) CheckProtected(c *gin.Context) {
	userInfo, err := helper.GetUserInfoFromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.users.Get(c.Request.Context(), userInfo.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "", gin.H{"logged_in_as": user})
}
