package auth

import (
	"context"
	"errors"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
	"github.com/Diego-EC/questioner-backend/internal/model"
)

// UserFinder looks a user up by email with its role loaded.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// Service implements login on top of a user lookup and token issuer.
type Service struct {
	users  UserFinder
	tokens *Tokens
}

func NewService(users UserFinder, tokens *Tokens) *Service {
	return &Service{users: users, tokens: tokens}
}

// Login checks email and password and issues an access token. Unknown
// email, wrong password and inactive accounts all fail the same way.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" {
		return "", nil, apperror.Missing("email")
	}
	if password == "" {
		return "", nil, apperror.Missing("password")
	}

	badCredentials := apperror.Unauthorized("bad username or password")

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", nil, badCredentials
		}
		return "", nil, err
	}

	ok, err := CheckPassword(user.Password, password)
	if err != nil {
		return "", nil, err
	}
	if !ok || !user.IsActive {
		return "", nil, badCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to the user id it was issued for.
func (s *Service) Authenticate(token string) (uint, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return 0, err
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return 0, apperror.Unauthorized("invalid token")
	}
	return uint(id), nil
}
