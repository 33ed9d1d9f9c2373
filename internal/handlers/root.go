package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/octofit-tracker/internal/services"
)

// Root handles GET / and lists the collections with their URLs
// @Summary API root
// @Description Lists every collection with its absolute URL
// @Tags Root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) Root(c *fiber.Ctx) error {
	base := h.BaseURL
	if base == "" {
		base = c.BaseURL()
	}
	prefix := strings.TrimSuffix(c.Path(), "/")

	out := make(fiber.Map, len(services.Kinds))
	for _, kind := range services.Kinds {
		out[string(kind)] = base + prefix + "/" + string(kind) + "/"
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
