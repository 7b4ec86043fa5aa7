package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-api/internal/models"
	"movie-catalog-api/internal/repository"
)

func TestCreateMovie(t *testing.T) {
	var inserted *models.Movie
	repo := &movieRepoMock{
		insertFunc: func(_ context.Context, movie *models.Movie) (*models.Movie, error) {
			inserted = movie
			return movie, nil
		},
	}
	svc := NewMovieService(repo)

	movie, err := svc.Create(context.Background(), models.CreateMovieRequest{
		Title:       "Dune",
		Description: "A noble family becomes embroiled in a war for a desert planet.",
		Genre:       models.Genre{Name: "Science Fiction", Description: "Speculative futures."},
		Director:    models.Director{Name: "Denis Villeneuve", Bio: "Canadian filmmaker."},
		Actors:      []string{"Timothee Chalamet", "Rebecca Ferguson"},
		ImagePath:   "dune.png",
		Featured:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)

	assert.Equal(t, "Dune", movie.Title)
	assert.Equal(t, "Science Fiction", movie.Genre.Name)
	assert.Equal(t, "Denis Villeneuve", movie.Director.Name)
	assert.True(t, movie.Featured)
}

func TestCreateMovieDuplicateTitle(t *testing.T) {
	insertCalled := false
	repo := &movieRepoMock{
		findByTitleFunc: func(_ context.Context, title string) (*models.Movie, error) {
			return &models.Movie{Title: title}, nil
		},
		insertFunc: func(_ context.Context, movie *models.Movie) (*models.Movie, error) {
			insertCalled = true
			return movie, nil
		},
	}
	svc := NewMovieService(repo)

	_, err := svc.Create(context.Background(), models.CreateMovieRequest{Title: "Dune"})
	assert.ErrorIs(t, err, ErrDuplicateTitle)
	assert.False(t, insertCalled, "no second record may be created")
}

func TestCreateMovieDuplicateFromIndexRace(t *testing.T) {
	repo := &movieRepoMock{
		insertFunc: func(_ context.Context, _ *models.Movie) (*models.Movie, error) {
			return nil, repository.ErrDuplicate
		},
	}
	svc := NewMovieService(repo)

	_, err := svc.Create(context.Background(), models.CreateMovieRequest{Title: "Dune"})
	assert.ErrorIs(t, err, ErrDuplicateTitle)
}

func TestGetByTitleNotFound(t *testing.T) {
	svc := NewMovieService(&movieRepoMock{})

	_, err := svc.GetByTitle(context.Background(), "Missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetDirectorProjectsSubObject(t *testing.T) {
	repo := &movieRepoMock{
		findByDirectorFunc: func(_ context.Context, name string) (*models.Movie, error) {
			require.Equal(t, "Denis Villeneuve", name)
			return &models.Movie{
				Title:    "Dune",
				Director: models.Director{Name: "Denis Villeneuve", Bio: "Canadian filmmaker."},
			}, nil
		},
	}
	svc := NewMovieService(repo)

	director, err := svc.GetDirector(context.Background(), "Denis Villeneuve")
	require.NoError(t, err)
	assert.Equal(t, "Denis Villeneuve", director.Name)
	assert.Equal(t, "Canadian filmmaker.", director.Bio)
}

func TestGetDirectorNotFound(t *testing.T) {
	svc := NewMovieService(&movieRepoMock{})

	_, err := svc.GetDirector(context.Background(), "Nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListByGenre(t *testing.T) {
	repo := &movieRepoMock{
		findByGenreFunc: func(_ context.Context, name string) ([]models.Movie, error) {
			require.Equal(t, "Horror", name)
			return []models.Movie{{Title: "Alien"}, {Title: "The Thing"}}, nil
		},
	}
	svc := NewMovieService(repo)

	movies, err := svc.ListByGenre(context.Background(), "Horror")
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}
