// Package repository implements the per-entity operations of the forum on
// top of the store: validation, parent checks, decorations and cascades.
package repository

import (
	"context"
	"strings"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
	"github.com/Diego-EC/questioner-backend/internal/auth"
	"github.com/Diego-EC/questioner-backend/internal/model"
	"github.com/Diego-EC/questioner-backend/internal/store"
)

// NewUser is the input of Users.Create.
type NewUser struct {
	Name     string
	Email    string
	Password string
}

// UserPatch lists the user fields an update may change; nil means keep.
type UserPatch struct {
	Name            *string
	Email           *string
	Password        *string
	AlertsActivated *bool
}

type Users struct {
	st *store.Store
}

func NewUsers(st *store.Store) *Users {
	return &Users{st: st}
}

// Create registers a user with the User role.
func (r *Users) Create(ctx context.Context, in NewUser) (*model.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return nil, apperror.Missing("name")
	}
	if in.Email == "" {
		return nil, apperror.Missing("email")
	}
	if in.Password == "" {
		return nil, apperror.Missing("password")
	}

	if err := r.ensureEmailFree(ctx, in.Email); err != nil {
		return nil, err
	}

	role, err := r.st.Roles.FindBy(ctx, "name", model.RoleUser)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:            in.Name,
		Email:           in.Email,
		Password:        hash,
		RoleID:          role.ID,
		IsActive:        true,
		AlertsActivated: true,
	}
	if err := r.st.Users.Insert(ctx, user); err != nil {
		return nil, err
	}
	user.Role = role
	return user, nil
}

func (r *Users) Get(ctx context.Context, id uint) (*model.User, error) {
	return r.st.Users.Get(ctx, id, "Role")
}

// GetByEmail loads a user and its role by email.
func (r *Users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.st.Users.FindBy(ctx, "email", strings.TrimSpace(email), "Role")
}

func (r *Users) List(ctx context.Context) ([]model.User, error) {
	return r.st.Users.List(ctx)
}

// Update applies the non-nil fields of patch.
func (r *Users) Update(ctx context.Context, id uint, patch UserPatch) (*model.User, error) {
	fields := map[string]any{}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, apperror.Invalid("name", "must not be empty")
		}
		fields["name"] = *patch.Name
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if email == "" {
			return nil, apperror.Invalid("email", "must not be empty")
		}
		current, err := r.st.Users.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if email != current.Email {
			if err := r.ensureEmailFree(ctx, email); err != nil {
				return nil, err
			}
		}
		fields["email"] = email
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, apperror.Invalid("password", "must not be empty")
		}
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}
	if patch.AlertsActivated != nil {
		fields["alerts_activated"] = *patch.AlertsActivated
	}

	if err := r.st.Users.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// SetActive enables or disables logins for a user.
func (r *Users) SetActive(ctx context.Context, id uint, active bool) (*model.User, error) {
	if err := r.st.Users.Update(ctx, id, map[string]any{"is_active": active}); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *Users) ensureEmailFree(ctx context.Context, email string) error {
	taken, err := r.st.Users.Exists(ctx, "email", email)
	if err != nil {
		return err
	}
	if taken {
		return apperror.Conflict("email %s is already registered", email)
	}
	return nil
}
