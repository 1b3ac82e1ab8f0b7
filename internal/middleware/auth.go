package middleware

import (
	"context"
	"strings"

	"soulforge/internal/config"
	"soulforge/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// SessionUser returns the authenticated user stored by AuthRequired, or nil
// for anonymous requests.
func SessionUser(c *fiber.Ctx) *models.User {
	if u, ok := c.Locals("user").(*models.User); ok {
		return u
	}
	return nil
}

func parseBearer(c *fiber.Ctx) (*models.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token structure - missing subject")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token structure - missing role")
	}

	return &models.User{Username: sub, Role: models.UserRole(role)}, nil
}

// storeUser records the resolved user in Fiber locals for handlers and in
// the request context for the context-aware logger. ContextMiddleware runs
// before auth, so the username has to enter the context here.
func storeUser(c *fiber.Ctx, user *models.User) {
	c.Locals("user", user)
	c.Locals("username", user.Username)
	c.SetUserContext(context.WithValue(c.UserContext(), UsernameKey, user.Username))
}

// AuthRequired enforces a valid bearer token and stores the resolved user
// in Fiber locals for handlers and the context logger.
func AuthRequired(c *fiber.Ctx) error {
	user, err := parseBearer(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	storeUser(c, user)
	return c.Next()
}

// OptionalAuth resolves a bearer token when present but lets anonymous
// requests through. Used on routes that are public but behave differently
// for signed-in editors.
func OptionalAuth(c *fiber.Ctx) error {
	if c.Get("Authorization") != "" {
		if user, err := parseBearer(c); err == nil {
			storeUser(c, user)
		}
	}
	return c.Next()
}

// RequireRole rejects requests whose session does not satisfy the required
// role. Must run after AuthRequired.
func RequireRole(required models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !SessionUser(c).HasPermission(required) {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Insufficient role for this operation"))
		}
		return c.Next()
	}
}
