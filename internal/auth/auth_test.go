package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
	"github.com/Diego-EC/questioner-backend/internal/model"
)

type fakeUsers map[string]*model.User

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := f[email]; ok {
		return u, nil
	}
	return nil, apperror.NotFound("user")
}

func newUser(t *testing.T, email, password string, active bool) *model.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &model.User{
		Base:     model.Base{ID: 7},
		Name:     "Ana",
		Email:    email,
		Password: hash,
		RoleID:   model.RoleUserID,
		IsActive: active,
		Role:     &model.Role{Name: model.RoleUser},
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("p")
	require.NoError(t, err)
	assert.NotEqual(t, "p", hash)

	ok, err := CheckPassword(hash, "p")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("secret", 30*24*time.Hour)
	token, err := tokens.Issue(newUser(t, "ana@x.com", "p", true))
	require.NoError(t, err)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, float64(7), claims["id"])
	assert.Equal(t, "ana@x.com", claims["email"])
	assert.Equal(t, model.RoleUser, claims["role"])
}

func TestTokenRejections(t *testing.T) {
	issuedAt := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	tokens := NewTokens("secret", time.Hour).WithClock(func() time.Time { return issuedAt })
	token, err := tokens.Issue(newUser(t, "ana@x.com", "p", true))
	require.NoError(t, err)

	later := tokens.WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) })
	_, err = later.Parse(token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.Contains(t, err.Error(), "expired")

	other := NewTokens("other-secret", time.Hour).WithClock(func() time.Time { return issuedAt })
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = tokens.Parse("not-a-token")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLogin(t *testing.T) {
	users := fakeUsers{
		"ana@x.com":  newUser(t, "ana@x.com", "p", true),
		"gone@x.com": newUser(t, "gone@x.com", "p", false),
	}
	svc := NewService(users, NewTokens("secret", time.Hour))
	ctx := context.Background()

	token, user, err := svc.Login(ctx, "ana@x.com", "p")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ana@x.com", user.Email)

	id, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)

	tests := []struct {
		name     string
		email    string
		password string
		is       func(error) bool
	}{
		{"wrong password", "ana@x.com", "wrong", isUnauthorized},
		{"unknown email", "bob@x.com", "p", isUnauthorized},
		{"inactive", "gone@x.com", "p", isUnauthorized},
		{"missing email", "", "p", apperror.IsValidation},
		{"missing password", "ana@x.com", "", apperror.IsValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.email, tt.password)
			assert.True(t, tt.is(err), "got %v", err)
		})
	}
}

func isUnauthorized(err error) bool {
	return errors.Is(err, apperror.ErrUnauthorized)
}
