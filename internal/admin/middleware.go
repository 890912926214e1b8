package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

// ProtectedPrefixes are the route prefixes that require an admin token.
var ProtectedPrefixes = []string{"/api/v1/admin", "/api/v1/dev"}

// Protect validates bearer tokens on protected prefixes and leaves every
// other path alone.
func Protect(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
		ContextKey: "user",
		Filter: func(c *fiber.Ctx) bool {
			return !isProtected(c.Path())
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	})
}

func isProtected(path string) bool {
	for _, p := range ProtectedPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// EmailFromCtx reads the email claim placed in locals by Protect.
func EmailFromCtx(c *fiber.Ctx) (string, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fiber.ErrUnauthorized
	}
	return email, nil
}
