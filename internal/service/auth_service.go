package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"movie-catalog-api/internal/models"
	"movie-catalog-api/internal/repository"
)

// AuthService verifies credentials, issues access tokens and resolves
// bearer tokens on protected requests.
type AuthService struct {
	users  repository.UserRepository
	secret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: secret}
}

// Login verifies a username/password pair and returns the user together
// with a signed access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", repository.ErrNotFound
		}
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := generateToken(user.Username, s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	slog.Info("user logged in", "username", user.Username)
	return user, token, nil
}

// Authorize validates a bearer token and resolves its subject to a
// fresh user record. It is stateless: no revocation list is consulted.
func (s *AuthService) Authorize(ctx context.Context, token string) (*models.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	username, err := parseToken(token, s.secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("lookup token subject: %w", err)
	}

	return user, nil
}
