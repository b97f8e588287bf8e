package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ptplabs/skillsheet-go/api/http/presenter"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health reports process liveness.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "ok"})
}
