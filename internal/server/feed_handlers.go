package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"soulforge/internal/content"
)

// GetFeed returns the recent-activity feed, newest first. The limit query
// parameter caps the entry count, defaulting to the overview page's five.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	limit := content.DefaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	feed := content.RecentActivity(s.content.Personas(), limit)
	return c.Status(fiber.StatusOK).JSON(feed)
}
