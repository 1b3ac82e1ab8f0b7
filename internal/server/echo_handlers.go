package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soulforge/internal/middleware"
	"soulforge/internal/models"
)

type echoRequest struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}

func newEcho(req echoRequest) models.Comment {
	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = "Anonymous Wanderer"
	}
	return models.Comment{
		ID:     uuid.NewString(),
		Author: author,
		Text:   req.Text,
		Date:   time.Now().Format("Jan 2, 2006"),
	}
}

// AddEcho leaves a top-level comment on a chapter. No login required;
// echoes are the one thing visitors may write.
func (s *Server) AddEcho(c *fiber.Ctx) error {
	t, ok := s.personaTypeFromParam(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("persona", c.Params("type")))
	}

	var req echoRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Echo text is required"))
	}

	echo := newEcho(req)
	status := s.content.AddEcho(c.UserContext(), t, c.Params("writingId"), c.Params("chapterId"), echo)
	return respondUpdate(c, status, echo)
}

// AddEchoReply nests a reply under an existing echo. A reply to an id that
// no longer exists is accepted and dropped, matching the tree transform.
func (s *Server) AddEchoReply(c *fiber.Ctx) error {
	t, ok := s.personaTypeFromParam(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("persona", c.Params("type")))
	}

	var req echoRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Echo text is required"))
	}

	reply := newEcho(req)
	status := s.content.AddEchoReply(c.UserContext(), t,
		c.Params("writingId"), c.Params("chapterId"), c.Params("parentId"), reply)
	return respondUpdate(c, status, reply)
}

// DeleteEcho removes an echo and its reply subtree. Editor or above.
func (s *Server) DeleteEcho(c *fiber.Ctx) error {
	t, ok := s.personaTypeFromParam(c)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("persona", c.Params("type")))
	}

	user := middleware.SessionUser(c)
	status := s.content.DeleteEcho(c.UserContext(), user, t,
		c.Params("writingId"), c.Params("chapterId"), c.Params("commentId"))
	return respondUpdate(c, status, fiber.Map{"status": "deleted"})
}
