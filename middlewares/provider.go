package middlewares

import (
	"crypto/subtle"
	"os"

	"github.com/gofiber/fiber/v2"
)

// ProviderAuth guards the ingest surface the upstream data provider
// pushes records through.
func ProviderAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("X-Provider-Key")
		expected := os.Getenv("PROVIDER_API_KEY")

		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "INVALID_PROVIDER_KEY",
			})
		}
		return c.Next()
	}
}
