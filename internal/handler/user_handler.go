package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-catalog-api/internal/middleware"
	"movie-catalog-api/internal/models"
	"movie-catalog-api/internal/repository"
	"movie-catalog-api/internal/service"
)

// UserHandler handles HTTP requests for user accounts and favorites.
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ValidationResponse lists every violated registration rule.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// Register creates a new user account.
func (h *UserHandler) Register(c fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	user, err := h.svc.Register(c.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationResponse{Errors: verr.Violations})
		}
		if errors.Is(err, service.ErrDuplicateUsername) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: req.Username + " already exists"})
		}
		slog.Error("failed to register user", "username", req.Username, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to register user"})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// ListUsers returns all users.
func (h *UserHandler) ListUsers(c fiber.Ctx) error {
	users, err := h.svc.List(c.Context())
	if err != nil {
		slog.Error("failed to list users", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to retrieve users"})
	}
	return c.JSON(users)
}

// GetUser returns a user by username.
func (h *UserHandler) GetUser(c fiber.Ctx) error {
	username := c.Params("username")

	user, err := h.svc.Get(c.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "user not found"})
		}
		slog.Error("failed to get user", "username", username, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to retrieve user"})
	}

	return c.JSON(user)
}

// UpdateUser replaces the profile of the authenticated user.
func (h *UserHandler) UpdateUser(c fiber.Ctx) error {
	username := c.Params("username")

	var req models.UpdateUserRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	caller := middleware.CurrentUser(c)
	user, err := h.svc.Update(c.Context(), username, req, caller.Username)
	if err != nil {
		if errors.Is(err, service.ErrPermissionDenied) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "permission denied"})
		}
		if errors.Is(err, service.ErrDuplicateUsername) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: req.Username + " already exists"})
		}
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "user not found"})
		}
		slog.Error("failed to update user", "username", username, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to update user"})
	}

	return c.JSON(user)
}

// AddFavorite appends a movie id to the user's favorites.
func (h *UserHandler) AddFavorite(c fiber.Ctx) error {
	username := c.Params("username")
	movieID := c.Params("movieId")

	user, err := h.svc.AddFavorite(c.Context(), username, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: username + " was not found"})
		}
		slog.Error("failed to add favorite", "username", username, "movie_id", movieID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to add favorite"})
	}

	return c.JSON(user)
}

// RemoveFavorite removes all occurrences of a movie id from the user's
// favorites.
func (h *UserHandler) RemoveFavorite(c fiber.Ctx) error {
	username := c.Params("username")
	movieID := c.Params("movieId")

	user, err := h.svc.RemoveFavorite(c.Context(), username, movieID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: username + " was not found"})
		}
		slog.Error("failed to remove favorite", "username", username, "movie_id", movieID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to remove favorite"})
	}

	return c.JSON(user)
}

// DeleteUser removes the account of the authenticated user.
func (h *UserHandler) DeleteUser(c fiber.Ctx) error {
	username := c.Params("username")

	caller := middleware.CurrentUser(c)
	if err := h.svc.Delete(c.Context(), username, caller.Username); err != nil {
		if errors.Is(err, service.ErrPermissionDenied) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "permission denied"})
		}
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: username + " was not found"})
		}
		slog.Error("failed to delete user", "username", username, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to delete user"})
	}

	return c.SendString(username + " was deleted.")
}
