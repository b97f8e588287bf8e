// Package http wires the service's HTTP routes.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ptplabs/skillsheet-go/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(app *fiber.App, extract *handlers.ExtractHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	v1.Get("/health", health.Health)
	v1.Post("/extract", extract.Extract)
}
