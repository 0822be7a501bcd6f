package validation

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest is the body of POST /user. New users always get the
// User role.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=80"`
	Email    string `json:"email" binding:"required,email,max=120"`
	Password string `json:"password" binding:"required,max=72"`
}

// UpdateUserRequest is a partial update; absent fields stay unchanged.
type UpdateUserRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=80"`
	Email           *string `json:"email" binding:"omitempty,email,max=120"`
	Password        *string `json:"password" binding:"omitempty,max=72"`
	AlertsActivated *bool   `json:"alerts_activated"`
}

type UserIsActiveRequest struct {
	UserID   uint  `json:"id_user" binding:"required"`
	IsActive *bool `json:"is_active" binding:"required"`
}
