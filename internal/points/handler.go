package points

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the main screen.
type Handler struct {
	service *Service
}

// NewHandler builds a points HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type nodeResponse struct {
	Path      string `json:"path"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at"`
}

// Open is the main screen's creation hook: it writes the placeholder node.
func (h *Handler) Open(c *fiber.Ctx) error {
	node, err := h.service.Write(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	return c.Status(http.StatusOK).JSON(nodeResponse{
		Path:      node.Path,
		Value:     node.Value,
		UpdatedAt: node.UpdatedAt.Format(time.RFC3339Nano),
	})
}
