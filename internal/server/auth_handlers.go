package server

import (
	"github.com/gofiber/fiber/v2"

	"soulforge/internal/auth"
	"soulforge/internal/middleware"
	"soulforge/internal/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login checks credentials against the static table and returns a bearer
// token for the session. Bad credentials get an undifferentiated 401.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Username == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and password are required"))
	}

	user, ok := s.content.Login(c.UserContext(), req.Username, req.Password)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := auth.IssueToken(s.config.JWTSecret, user, auth.DefaultSessionTTL)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(loginResponse{Token: token, User: user})
}

// Logout clears the persisted session. The bearer token itself simply
// expires; there is no revocation list for a single-owner site.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.content.Logout(c.UserContext())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "logged out"})
}

// Session returns the authenticated user for the presented token.
func (s *Server) Session(c *fiber.Ctx) error {
	user := middleware.SessionUser(c)
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("No active session"))
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
