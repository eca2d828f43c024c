// handlers/teams.go - team JSON endpoints
package handlers

import (
	"gamenight/apperror"
	"gamenight/services"

	"github.com/gofiber/fiber/v2"
)

type TeamHandler struct {
	svc *services.TeamService
}

func NewTeamHandler(svc *services.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// List returns all teams with their member rosters.
// GET /scoring/teams
func (h *TeamHandler) List(c *fiber.Ctx) error {
	teams, err := h.svc.ListTeams()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(teams)
}

// Create creates a team, optionally with an initial roster.
// POST /scoring/teams {session_id, name, member_ids?}
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var req struct {
		SessionID uint   `json:"session_id"`
		Name      string `json:"name"`
		MemberIDs []uint `json:"member_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, apperror.Validation("invalid request body"))
	}
	if req.Name == "" {
		return writeError(c, apperror.Validation("name is required"))
	}
	if req.SessionID == 0 {
		return writeError(c, apperror.Validation("session_id is required"))
	}

	team, err := h.svc.CreateTeam(req.SessionID, req.Name, req.MemberIDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": team.ID, "name": team.Name})
}

// AddMember adds one gamer to a team.
// POST /scoring/teams/:id/members {gamer_id}
func (h *TeamHandler) AddMember(c *fiber.Ctx) error {
	teamID, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req struct {
		GamerID uint `json:"gamer_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, apperror.Validation("invalid request body"))
	}
	if req.GamerID == 0 {
		return writeError(c, apperror.Validation("gamer_id is required"))
	}

	if err := h.svc.AddMember(teamID, req.GamerID); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Member added successfully"})
}
