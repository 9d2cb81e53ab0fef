package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/dailyquiz/internal/services"
)

// HealthHandler exposes liveness probes.
type HealthHandler struct {
	whatsapp *services.WhatsAppService
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(whatsapp *services.WhatsAppService) *HealthHandler {
	return &HealthHandler{whatsapp: whatsapp}
}

// Health reports that the service is up.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// WhatsApp reports reachability of the message gateway.
func (h *HealthHandler) WhatsApp(c *fiber.Ctx) error {
	status, err := h.whatsapp.Ping()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"ok": true, "status": status})
}
