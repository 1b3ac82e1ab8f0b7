package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"soulforge/internal/mailer"
	"soulforge/internal/media"
	"soulforge/internal/middleware"
	"soulforge/internal/models"
)

// Contact relays a contact-form submission to the site owner's inbox.
func (s *Server) Contact(c *fiber.Ctx) error {
	var msg mailer.Message
	if err := c.BodyParser(&msg); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid contact payload"))
	}
	if strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Body) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and message are required"))
	}

	if err := s.mailer.Send(msg); err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "Failed to deliver contact message", "error", err)
		return models.RespondWithError(c, fiber.StatusBadGateway,
			&models.AppError{Code: "DELIVERY_FAILED", Message: "Message could not be delivered", Err: err})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "sent"})
}

type mediaURLRequest struct {
	URL string `json:"url"`
}

// ProcessMediaURL normalizes a pasted asset link into an embeddable URL.
func (s *Server) ProcessMediaURL(c *fiber.Ctx) error {
	var req mediaURLRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A url is required"))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": media.ProcessImageURL(req.URL)})
}
