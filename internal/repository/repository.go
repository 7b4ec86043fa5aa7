package repository

import (
	"context"

	"movie-catalog-api/internal/models"
)

// UserRepository persists users.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	// Replace overwrites username, password, email and birthday of the
	// matched user, leaving favorites untouched, and returns the updated
	// record.
	Replace(ctx context.Context, username string, user *models.User) (*models.User, error)
	PushFavorite(ctx context.Context, username, movieID string) (*models.User, error)
	PullFavorite(ctx context.Context, username, movieID string) (*models.User, error)
	Delete(ctx context.Context, username string) error
}

// MovieRepository persists movies.
type MovieRepository interface {
	Insert(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)
	FindAll(ctx context.Context) ([]models.Movie, error)
	FindByGenre(ctx context.Context, genreName string) ([]models.Movie, error)
	FindByDirector(ctx context.Context, directorName string) (*models.Movie, error)
}
