package handler

import "github.com/gofiber/fiber/v3"

// RegisterRoutes wires all API routes. The protected middleware guards
// every route except login, registration and the public landing
// routes.
func RegisterRoutes(app *fiber.App, auth *AuthHandler, users *UserHandler, movies *MovieHandler, protected fiber.Handler) {
	// Public routes must be registered before the guarded groups so the
	// group middleware does not apply to them.
	app.Get("/", Welcome)
	app.Get("/health", Health)
	app.Post("/login", auth.Login)
	app.Post("/users", users.Register)

	m := app.Group("/movies", protected)
	m.Get("/", movies.ListMovies)
	m.Post("/", movies.CreateMovie)
	// Specific paths must be registered before the title wildcard.
	m.Get("/genre/:name", movies.ListByGenre)
	m.Get("/directors/:name", movies.GetDirector)
	m.Get("/:title", movies.GetMovie)

	u := app.Group("/users", protected)
	u.Get("/", users.ListUsers)
	u.Get("/:username", users.GetUser)
	u.Put("/:username", users.UpdateUser)
	u.Delete("/:username", users.DeleteUser)
	u.Post("/:username/movies/:movieId", users.AddFavorite)
	u.Delete("/:username/movies/:movieId", users.RemoveFavorite)
}
