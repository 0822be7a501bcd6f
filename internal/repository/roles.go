package repository

import (
	"context"

	"github.com/Diego-EC/questioner-backend/internal/model"
	"github.com/Diego-EC/questioner-backend/internal/store"
)

type Roles struct {
	st *store.Store
}

func NewRoles(st *store.Store) *Roles {
	return &Roles{st: st}
}

func (r *Roles) List(ctx context.Context) ([]model.Role, error) {
	return r.st.Roles.List(ctx)
}

// Seed inserts the Admin and User roles with their fixed ids if missing
// and returns how many rows it created.
func (r *Roles) Seed(ctx context.Context) (int, error) {
	created := 0
	err := r.st.Transaction(ctx, func(tx *store.Store) error {
		for _, role := range []model.Role{
			{Base: model.Base{ID: model.RoleAdminID}, Name: model.RoleAdmin},
			{Base: model.Base{ID: model.RoleUserID}, Name: model.RoleUser},
		} {
			exists, err := tx.Roles.Exists(ctx, "id", role.ID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			if err := tx.Roles.Insert(ctx, &role); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
