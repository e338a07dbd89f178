package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbill/billing-api/internal/application/dto"
	"github.com/gstbill/billing-api/pkg/jwt"
)

// LocalUserID is the Fiber locals key holding the authenticated account id.
const LocalUserID = "user_id"

// AuthMiddleware verifies the Bearer session token on every request and
// stores the account id in c.Locals. Verification is per request; there is no
// caching, rate limiting or refresh here. Any failure yields the fixed 401
// envelope.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID returns the account id placed by AuthMiddleware, "" outside it.
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
