package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CurrentAPIVersion is the only API version served
const CurrentAPIVersion = "1.0.0"

// VersionMiddleware records the requested API version and echoes the served one
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", CurrentAPIVersion)

		// Support version aliases
		if version == "1" || version == "1.0" {
			version = CurrentAPIVersion
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", CurrentAPIVersion)

		return c.Next()
	}
}
