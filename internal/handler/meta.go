package handler

import "github.com/gofiber/fiber/v3"

// Welcome is the public landing route.
func Welcome(c fiber.Ctx) error {
	return c.SendString("Welcome to the Movie Catalog API!")
}

// Health returns service health status.
func Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "movie-catalog-api",
	})
}
