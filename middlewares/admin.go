package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth verifies the staff identity headers and exposes the actor
// id to handlers via Locals("admin_id"). The signature is
// HMAC-SHA256(admin id, shared secret).
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID := c.Get("X-Admin-ID")
		signature := c.Get("X-Signature")

		if adminID == "" || signature == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "ADMIN_ID_AND_SIGNATURE_REQUIRED",
			})
		}

		secret := os.Getenv("ADMIN_API_SECRET")

		h := hmac.New(sha256.New, []byte(secret))
		h.Write([]byte(adminID))
		expected := hex.EncodeToString(h.Sum(nil))

		if !hmac.Equal([]byte(signature), []byte(expected)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "INVALID_SIGNATURE",
			})
		}

		c.Locals("admin_id", adminID)
		return c.Next()
	}
}
