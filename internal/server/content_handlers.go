package server

import (
	"github.com/gofiber/fiber/v2"

	"soulforge/internal/middleware"
	"soulforge/internal/models"
)

// GetGlobal returns the singleton site-settings record.
func (s *Server) GetGlobal(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(s.content.GlobalContent())
}

// UpdateGlobal replaces the site-settings record. Admin only; the store
// enforces the gate and this handler just maps the outcome.
func (s *Server) UpdateGlobal(c *fiber.Ctx) error {
	var gc models.GlobalContent
	if err := c.BodyParser(&gc); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid global content payload"))
	}

	user := middleware.SessionUser(c)
	status := s.content.UpdateGlobalContent(c.UserContext(), user, gc)
	return respondUpdate(c, status, fiber.Map{"status": "updated"})
}

// GetAbout returns every about tab.
func (s *Server) GetAbout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(s.content.AboutData())
}

// GetAboutTab returns one tab's record.
func (s *Server) GetAboutTab(c *fiber.Ctx) error {
	tab := models.AboutTab(c.Params("tab"))
	ac, ok := s.content.AboutTab(tab)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("about tab", c.Params("tab")))
	}
	return c.Status(fiber.StatusOK).JSON(ac)
}

// UpdateAboutTab replaces one tab's record. Editor or above.
func (s *Server) UpdateAboutTab(c *fiber.Ctx) error {
	tab := models.AboutTab(c.Params("tab"))

	var ac models.AboutContent
	if err := c.BodyParser(&ac); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid about content payload"))
	}

	user := middleware.SessionUser(c)
	status := s.content.UpdateAboutData(c.UserContext(), user, tab, ac)
	return respondUpdate(c, status, fiber.Map{"status": "updated", "tab": tab})
}
