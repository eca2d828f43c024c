// handlers/games.go - game JSON endpoints
package handlers

import (
	"gamenight/apperror"
	"gamenight/models"
	"gamenight/services"

	"github.com/gofiber/fiber/v2"
)

type GameHandler struct {
	svc *services.ScoreService
}

func NewGameHandler(svc *services.ScoreService) *GameHandler {
	return &GameHandler{svc: svc}
}

// List returns all games, most recent first.
// GET /scoring/games
func (h *GameHandler) List(c *fiber.Ctx) error {
	games, err := h.svc.ListGames()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(games)
}

// Create records a game and its scores.
// POST /scoring/games {session_id, name, game_type, scores: [{team_id|gamer_id, points}]}
func (h *GameHandler) Create(c *fiber.Ctx) error {
	var req struct {
		SessionID uint                  `json:"session_id"`
		Name      string                `json:"name"`
		GameType  models.GameType       `json:"game_type"`
		Scores    []services.ScoreEntry `json:"scores"`
	}
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, apperror.Validation("invalid request body"))
	}
	// scores must be present; an empty list is fine and just creates the game.
	if req.Name == "" || req.GameType == "" || req.Scores == nil {
		return writeError(c, apperror.Validation("name, game_type, and scores are required"))
	}
	if req.SessionID == 0 {
		return writeError(c, apperror.Validation("session_id is required"))
	}

	game, err := h.svc.PostGame(req.SessionID, req.Name, req.GameType, req.Scores)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      game.ID,
		"message": "Game created successfully",
	})
}

// Get returns one game with its resolved scores.
// GET /scoring/games/:id
func (h *GameHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}

	detail, err := h.svc.GetGame(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(detail)
}
