package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"movie-catalog-api/internal/models"
	"movie-catalog-api/internal/repository"
)

// UserService handles registration, profile management and favorites.
type UserService struct {
	repo     repository.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register validates the registration fields, checks username
// uniqueness, hashes the password and creates the user with an empty
// favorites list.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	// Pre-check only; the unique index on username is the real guard.
	if _, err := s.repo.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:       req.Username,
		Password:       string(hash),
		Email:          req.Email,
		Birthday:       req.Birthday,
		FavoriteMovies: []string{},
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	slog.Info("user registered", "username", created.Username)
	return created, nil
}

// Get returns a user by username. Any authenticated caller may look up
// any profile.
func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// Update overwrites the target user's profile fields with the supplied
// replacement. Only the owning identity may update a profile. The new
// password is hashed before it is stored.
func (s *UserService) Update(ctx context.Context, target string, req models.UpdateUserRequest, caller string) (*models.User, error) {
	if caller != target {
		return nil, ErrPermissionDenied
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	updated, err := s.repo.Replace(ctx, target, &models.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		Birthday: req.Birthday,
	})
	if err != nil {
		// Renaming onto a taken username trips the unique index.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	slog.Info("user updated", "username", updated.Username)
	return updated, nil
}

// AddFavorite appends the movie id to the user's favorites. No
// duplicate check and no movie-existence check is performed.
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	return s.repo.PushFavorite(ctx, username, movieID)
}

// RemoveFavorite removes every occurrence of the movie id from the
// user's favorites. Removing an absent id is not an error.
func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	return s.repo.PullFavorite(ctx, username, movieID)
}

// Delete removes the target user. Only the owning identity may delete
// a profile.
func (s *UserService) Delete(ctx context.Context, target, caller string) error {
	if caller != target {
		return ErrPermissionDenied
	}
	if err := s.repo.Delete(ctx, target); err != nil {
		return err
	}
	slog.Info("user deleted", "username", target)
	return nil
}

// validateRegistration runs every field rule and reports all
// violations together.
func (s *UserService) validateRegistration(req models.RegisterRequest) error {
	var violations []string

	if err := s.validate.Var(req.Username, "required,min=5"); err != nil {
		violations = append(violations, "Username is required")
	}
	if err := s.validate.Var(req.Username, "alphanum"); err != nil {
		violations = append(violations, "Username contains non alphanumeric characters - not allowed.")
	}
	if err := s.validate.Var(req.Password, "required"); err != nil {
		violations = append(violations, "Password is required")
	}
	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		violations = append(violations, "Email does not appear to be valid")
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
