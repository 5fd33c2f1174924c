package jwt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/petshop/pkg/access"
	"github.com/artem13815/petshop/pkg/auth"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer tokens.
// On success sets the token subject into c.Locals("userId").
func NewAuthMiddleware(gen *Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return challenge(c, "missing Authorization header")
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		var tokenStr string
		if strings.Contains(authHeader, " ") {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			} else {
				tokenStr = strings.TrimSpace(authHeader)
			}
		} else {
			tokenStr = strings.TrimSpace(authHeader)
		}
		if tokenStr == "" {
			return challenge(c, "empty token")
		}
		subject, err := gen.Validate(tokenStr)
		if err != nil {
			return challenge(c, "invalid or expired token")
		}
		c.Locals("userId", subject)
		return c.Next()
	}
}

// NewRequireSuperuser returns a middleware that resolves the token subject
// against the user directory and admits only callers whose role allows
// catalog writes. Runs after NewAuthMiddleware. A directory lookup failure
// that is not "no such user" is a storage fault, not an authorization one.
func NewRequireSuperuser(users auth.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, _ := c.Locals("userId").(string)
		uid, err := uuid.Parse(subject)
		if err != nil {
			return challenge(c, "invalid token subject")
		}
		user, err := users.GetByID(c.Context(), uid)
		if err != nil {
			if errors.Is(err, auth.ErrNotFound) {
				return challenge(c, "unknown token subject")
			}
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
		}
		if !access.RoleFor(&user).CanWrite() {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "insufficient privileges"})
		}
		c.Locals("user", user)
		return c.Next()
	}
}

func challenge(c *fiber.Ctx, message string) error {
	c.Set("WWW-Authenticate", "Bearer")
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": message})
}
