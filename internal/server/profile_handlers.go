package server

import (
	"creel/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfileByUser returns a user's progression readout: avatar, total
// experience and current level.
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	var req struct {
		UserID uint `json:"userId"`
	}
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	profile, err := s.progression.GetProfile(c.UserContext(), req.UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return respondResult(c, profile)
}
