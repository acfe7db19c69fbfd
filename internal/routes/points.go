package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/whatsclone/whatsclone/internal/points"
)

// RegisterPointsRoutes wires the main screen.
func RegisterPointsRoutes(r fiber.Router, h *points.Handler) {
	r.Post("/main/open", h.Open)
}
