// Package testutil provides isolated databases for tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Diego-EC/questioner-backend/internal/config"
	"github.com/Diego-EC/questioner-backend/internal/database"
	"github.com/Diego-EC/questioner-backend/internal/model"
)

// NewDB returns a migrated, role-seeded in-memory sqlite database that is
// private to the calling test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	return NewService(t).DB()
}

// NewService is NewDB wrapped in a database.Service.
func NewService(t *testing.T) database.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	svc, err := database.New(config.DatabaseConfig{Driver: "sqlite", DSN: dsn, Name: t.Name()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	require.NoError(t, database.Migrate(svc.DB()))
	SeedRoles(t, svc.DB())
	return svc
}

// SeedRoles inserts the Admin and User roles with their fixed ids.
func SeedRoles(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := database.Now()
	for _, r := range []model.Role{
		{Base: model.Base{ID: model.RoleAdminID, Created: now, LastUpdate: now}, Name: model.RoleAdmin},
		{Base: model.Base{ID: model.RoleUserID, Created: now, LastUpdate: now}, Name: model.RoleUser},
	} {
		require.NoError(t, db.Create(&r).Error)
	}
}

// Clock is a manually advanced clock for deterministic timestamps.
type Clock struct {
	T time.Time
}

// NewClock starts a clock at a fixed UTC instant.
func NewClock() *Clock {
	return &Clock{T: time.Date(2021, 1, 21, 19, 34, 2, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
