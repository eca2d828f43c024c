// handlers/leaderboard.go
package handlers

import (
	"gamenight/services"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardHandler struct {
	svc *services.ScoreService
}

func NewLeaderboardHandler(svc *services.ScoreService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

// Get returns every gamer's name, total and history, best first.
// GET /scoring/leaderboard
func (h *LeaderboardHandler) Get(c *fiber.Ctx) error {
	entries, err := h.svc.Leaderboard()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(entries)
}
