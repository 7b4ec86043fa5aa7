package service

import (
	"context"

	"movie-catalog-api/internal/models"
	"movie-catalog-api/internal/repository"
)

type userRepoMock struct {
	insertFunc         func(ctx context.Context, user *models.User) (*models.User, error)
	findByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	findAllFunc        func(ctx context.Context) ([]models.User, error)
	replaceFunc        func(ctx context.Context, username string, user *models.User) (*models.User, error)
	pushFavoriteFunc   func(ctx context.Context, username, movieID string) (*models.User, error)
	pullFavoriteFunc   func(ctx context.Context, username, movieID string) (*models.User, error)
	deleteFunc         func(ctx context.Context, username string) error
}

func (m *userRepoMock) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	if m.insertFunc == nil {
		return user, nil
	}
	return m.insertFunc(ctx, user)
}

func (m *userRepoMock) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFunc == nil {
		return nil, repository.ErrNotFound
	}
	return m.findByUsernameFunc(ctx, username)
}

func (m *userRepoMock) FindAll(ctx context.Context) ([]models.User, error) {
	if m.findAllFunc == nil {
		return nil, nil
	}
	return m.findAllFunc(ctx)
}

func (m *userRepoMock) Replace(ctx context.Context, username string, user *models.User) (*models.User, error) {
	if m.replaceFunc == nil {
		return user, nil
	}
	return m.replaceFunc(ctx, username, user)
}

func (m *userRepoMock) PushFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	if m.pushFavoriteFunc == nil {
		return nil, repository.ErrNotFound
	}
	return m.pushFavoriteFunc(ctx, username, movieID)
}

func (m *userRepoMock) PullFavorite(ctx context.Context, username, movieID string) (*models.User, error) {
	if m.pullFavoriteFunc == nil {
		return nil, repository.ErrNotFound
	}
	return m.pullFavoriteFunc(ctx, username, movieID)
}

func (m *userRepoMock) Delete(ctx context.Context, username string) error {
	if m.deleteFunc == nil {
		return repository.ErrNotFound
	}
	return m.deleteFunc(ctx, username)
}

type movieRepoMock struct {
	insertFunc         func(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	findByTitleFunc    func(ctx context.Context, title string) (*models.Movie, error)
	findAllFunc        func(ctx context.Context) ([]models.Movie, error)
	findByGenreFunc    func(ctx context.Context, genreName string) ([]models.Movie, error)
	findByDirectorFunc func(ctx context.Context, directorName string) (*models.Movie, error)
}

func (m *movieRepoMock) Insert(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	if m.insertFunc == nil {
		return movie, nil
	}
	return m.insertFunc(ctx, movie)
}

func (m *movieRepoMock) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	if m.findByTitleFunc == nil {
		return nil, repository.ErrNotFound
	}
	return m.findByTitleFunc(ctx, title)
}

func (m *movieRepoMock) FindAll(ctx context.Context) ([]models.Movie, error) {
	if m.findAllFunc == nil {
		return nil, nil
	}
	return m.findAllFunc(ctx)
}

func (m *movieRepoMock) FindByGenre(ctx context.Context, genreName string) ([]models.Movie, error) {
	if m.findByGenreFunc == nil {
		return nil, nil
	}
	return m.findByGenreFunc(ctx, genreName)
}

func (m *movieRepoMock) FindByDirector(ctx context.Context, directorName string) (*models.Movie, error) {
	if m.findByDirectorFunc == nil {
		return nil, repository.ErrNotFound
	}
	return m.findByDirectorFunc(ctx, directorName)
}
