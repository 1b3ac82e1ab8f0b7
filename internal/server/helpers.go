package server

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"soulforge/internal/models"
)

// personaTypeFromParam resolves the :type path segment. It accepts either
// the archetype display name (URL-escaped, e.g. The%20Glyphsmith) or a
// persona's short id (e.g. glyphsmith).
func (s *Server) personaTypeFromParam(c *fiber.Ctx) (models.PersonaType, bool) {
	raw := c.Params("type")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}

	t := models.PersonaType(decoded)
	if models.ValidPersonaType(t) {
		return t, true
	}
	for pt, p := range s.content.Personas() {
		if p.ID == decoded {
			return pt, true
		}
	}
	return "", false
}

// respondUpdate maps a mutation outcome to an HTTP response. The body on
// success is the caller's choice.
func respondUpdate(c *fiber.Ctx, status models.UpdateStatus, body any) error {
	switch status {
	case models.UpdateApplied:
		return c.Status(fiber.StatusOK).JSON(body)
	case models.UpdateUnauthorized:
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Insufficient role for this operation"))
	case models.UpdatePersistFailed:
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewPersistError(nil))
	case models.UpdateInvalid:
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("resource", c.Path()))
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(nil))
	}
}
