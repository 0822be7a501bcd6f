package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Diego-EC/questioner-backend/internal/helper"
	"github.com/Diego-EC/questioner-backend/internal/repository"
	"github.com/Diego-EC/questioner-backend/internal/response"
	"github.com/Diego-EC/questioner-backend/internal/validation"
)

type UserHandler struct {
	users *repository.Users
	roles *repository.Roles
}

func NewUserHandler(users *repository.Users, roles *repository.Roles) *UserHandler {
	return &UserHandler{users: users, roles: roles}
}

func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.roles.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser registers a new account. It is the only public write.
func (h *UserHandler) CreateUser(c *gin.Context) {
	req, err := helper.GetValidatedFromContext[validation.CreateUserRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.users.Create(c.Request.Context(), repository.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "User added", gin.H{"user": user})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := helper.ParamID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := helper.GetValidatedFromContext[validation.UpdateUserRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, repository.UserPatch{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		AlertsActivated: req.AlertsActivated,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "User updated", gin.H{"user": user})
}

// UpdateUserIsActive enables or disables an account. Admin only.
func (h *UserHandler) UpdateUserIsActive(c *gin.Context) {
	req, err := helper.GetValidatedFromContext[validation.UserIsActiveRequest](c)
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.users.SetActive(c.Request.Context(), req.UserID, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SendResponse(c, http.StatusOK, "User is_active updated", gin.H{"user": user})
}
