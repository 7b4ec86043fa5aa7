package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"movie-catalog-api/internal/models"
	"movie-catalog-api/internal/repository"
)

// MovieService handles the movie catalog. The catalog is append-only:
// movies can be created and read, never updated or deleted.
type MovieService struct {
	repo repository.MovieRepository
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo repository.MovieRepository) *MovieService {
	return &MovieService{repo: repo}
}

// List returns all movies.
func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindAll(ctx)
}

// GetByTitle returns the movie with the exact title.
func (s *MovieService) GetByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return s.repo.FindByTitle(ctx, title)
}

// Create adds a movie after checking title uniqueness.
func (s *MovieService) Create(ctx context.Context, req models.CreateMovieRequest) (*models.Movie, error) {
	// Pre-check only; the unique index on title is the real guard.
	if _, err := s.repo.FindByTitle(ctx, req.Title); err == nil {
		return nil, ErrDuplicateTitle
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check title: %w", err)
	}

	movie := &models.Movie{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Director:    req.Director,
		Actors:      req.Actors,
		ImagePath:   req.ImagePath,
		Featured:    req.Featured,
	}

	created, err := s.repo.Insert(ctx, movie)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("create movie: %w", err)
	}

	slog.Info("movie created", "title", created.Title)
	return created, nil
}

// ListByGenre returns all movies whose genre name matches exactly.
func (s *MovieService) ListByGenre(ctx context.Context, genreName string) ([]models.Movie, error) {
	return s.repo.FindByGenre(ctx, genreName)
}

// GetDirector returns the director sub-object of the first movie whose
// director name matches exactly.
func (s *MovieService) GetDirector(ctx context.Context, directorName string) (*models.Director, error) {
	movie, err := s.repo.FindByDirector(ctx, directorName)
	if err != nil {
		return nil, err
	}
	return &movie.Director, nil
}
