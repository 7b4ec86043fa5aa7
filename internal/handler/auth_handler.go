package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-catalog-api/internal/models"
	"movie-catalog-api/internal/repository"
	"movie-catalog-api/internal/service"
)

// AuthHandler handles login requests.
type AuthHandler struct {
	svc *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Login verifies credentials and returns the user with a bearer token.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	user, token, err := h.svc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid username or password"})
		}
		slog.Error("login failed", "username", req.Username, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "login failed"})
	}

	return c.JSON(models.LoginResponse{User: user, Token: token})
}
