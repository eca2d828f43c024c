// handlers/gamers.go - gamer form and JSON endpoints
package handlers

import (
	"errors"
	"strings"

	"gamenight/apperror"
	"gamenight/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GamerHandler struct {
	db *gorm.DB
}

func NewGamerHandler(db *gorm.DB) *GamerHandler {
	return &GamerHandler{db: db}
}

// CreatePage serves the gamer creation form.
// GET /scoring/gamer/create
func (h *GamerHandler) CreatePage(c *fiber.Ctx) error {
	return render(c, "gamer_create.html", nil)
}

// Create creates a gamer from the submitted form and redirects to the list.
// POST /scoring/gamer/create (form: name)
func (h *GamerHandler) Create(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return writeError(c, apperror.Validation("name is required"))
	}

	gamer := models.Gamer{Name: name}
	if err := h.db.Create(&gamer).Error; err != nil {
		return writeError(c, apperror.FromStore(err, "Gamer with this name already exists"))
	}
	return c.Redirect("/scoring/gamer/list", fiber.StatusSeeOther)
}

// ListPage renders all gamers ordered by total points.
// GET /scoring/gamer/list
func (h *GamerHandler) ListPage(c *fiber.Ctx) error {
	var gamers []models.Gamer
	if err := h.db.Order("total_points DESC").Find(&gamers).Error; err != nil {
		return writeError(c, apperror.FromStore(err, "failed to list gamers"))
	}
	return render(c, "gamer_list.html", fiber.Map{"Gamers": gamers})
}

// Get returns one gamer as JSON.
// GET /scoring/gamers/:id
func (h *GamerHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}

	var gamer models.Gamer
	if err := h.db.First(&gamer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return writeError(c, apperror.NotFound("gamer", id))
		}
		return writeError(c, apperror.FromStore(err, "failed to load gamer"))
	}
	return c.JSON(gamer)
}
