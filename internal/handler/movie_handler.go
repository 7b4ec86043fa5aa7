package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-catalog-api/internal/models"
	"movie-catalog-api/internal/repository"
	"movie-catalog-api/internal/service"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	svc *service.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// ListMovies returns all movies.
func (h *MovieHandler) ListMovies(c fiber.Ctx) error {
	movies, err := h.svc.List(c.Context())
	if err != nil {
		slog.Error("failed to list movies", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to retrieve movies"})
	}
	return c.JSON(movies)
}

// GetMovie returns a single movie by exact title.
func (h *MovieHandler) GetMovie(c fiber.Ctx) error {
	title := c.Params("title")

	movie, err := h.svc.GetByTitle(c.Context(), title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "movie not found"})
		}
		slog.Error("failed to get movie", "title", title, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to retrieve movie"})
	}

	return c.JSON(movie)
}

// CreateMovie adds a new movie to the catalog.
func (h *MovieHandler) CreateMovie(c fiber.Ctx) error {
	var req models.CreateMovieRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	movie, err := h.svc.Create(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateTitle) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: req.Title + " already exists"})
		}
		slog.Error("failed to create movie", "title", req.Title, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to create movie"})
	}

	return c.Status(fiber.StatusCreated).JSON(movie)
}

// ListByGenre returns all movies whose genre name matches.
func (h *MovieHandler) ListByGenre(c fiber.Ctx) error {
	name := c.Params("name")

	movies, err := h.svc.ListByGenre(c.Context(), name)
	if err != nil {
		slog.Error("failed to list movies by genre", "genre", name, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to retrieve movies"})
	}

	return c.JSON(movies)
}

// GetDirector returns the director sub-object of the first matching
// movie.
func (h *MovieHandler) GetDirector(c fiber.Ctx) error {
	name := c.Params("name")

	director, err := h.svc.GetDirector(c.Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "director not found"})
		}
		slog.Error("failed to get director", "director", name, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to retrieve director"})
	}

	return c.JSON(director)
}
