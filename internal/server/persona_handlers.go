package server

import (
	"github.com/gofiber/fiber/v2"

	"soulforge/internal/imagegen"
	"soulforge/internal/media"
	"soulforge/internal/middleware"
	"soulforge/internal/models"
)

// GetPersonas returns the full persona collection.
func (s *Server) GetPersonas(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(s.content.Personas())
}

// GetPersona returns one archetype's record.
func (s *Server) GetPersona(c *fiber.Ctx) error {
	t, ok := s.personaTypeFromParam(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("persona", c.Params("type")))
	}
	p, ok := s.content.Persona(t)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("persona", string(t)))
	}
	return c.Status(fiber.StatusOK).JSON(p)
}

// UpdatePersona replaces one archetype's record wholesale. Image URLs are
// normalized so pasted Drive share links come back embeddable.
func (s *Server) UpdatePersona(c *fiber.Ctx) error {
	t, ok := s.personaTypeFromParam(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("persona", c.Params("type")))
	}

	var p models.Persona
	if err := c.BodyParser(&p); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid persona payload"))
	}
	p.Image = media.ProcessImageURL(p.Image)
	for i := range p.Works {
		p.Works[i].Image = media.ProcessImageURL(p.Works[i].Image)
	}
	for i := range p.ProjectCategories {
		p.ProjectCategories[i].BannerImage = media.ProcessImageURL(p.ProjectCategories[i].BannerImage)
		for j := range p.ProjectCategories[i].Items {
			p.ProjectCategories[i].Items[j].Image = media.ProcessImageURL(p.ProjectCategories[i].Items[j].Image)
		}
	}

	user := middleware.SessionUser(c)
	status := s.content.UpdatePersona(c.UserContext(), user, t, p)
	return respondUpdate(c, status, fiber.Map{"status": "updated", "type": t})
}

// GenerateBanner asks the image model for a new persona banner and stores
// it on the persona. Editor or above; the call is slow and costs money.
func (s *Server) GenerateBanner(c *fiber.Ctx) error {
	t, ok := s.personaTypeFromParam(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("persona", c.Params("type")))
	}
	p, ok := s.content.Persona(t)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("persona", string(t)))
	}

	image, err := s.imageGen.Generate(c.UserContext(), imagegen.BannerPrompt(p))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadGateway,
			&models.AppError{Code: "GENERATION_FAILED", Message: "Banner generation failed", Err: err})
	}

	p.Image = image
	user := middleware.SessionUser(c)
	status := s.content.UpdatePersona(c.UserContext(), user, t, p)
	return respondUpdate(c, status, fiber.Map{"image": image})
}
