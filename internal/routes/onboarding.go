package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/whatsclone/whatsclone/internal/onboarding"
)

// RegisterOnboardingRoutes wires the login and validator screens.
func RegisterOnboardingRoutes(r fiber.Router, h *onboarding.Handler, rateLimiter fiber.Handler) {
	login := r.Group("/login")
	if rateLimiter != nil {
		login.Post("/register", rateLimiter, h.Register)
	} else {
		login.Post("/register", h.Register)
	}
	login.Get("/notice", h.PendingNotice)
	login.Post("/notice/ack", h.AcknowledgeNotice)

	r.Post("/validator/verify", h.Verify)
	r.Get("/screen", h.Screen)
}
