// handlers/sessions.go - session form endpoints
package handlers

import (
	"strings"

	"gamenight/apperror"
	"gamenight/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SessionHandler struct {
	db *gorm.DB
}

func NewSessionHandler(db *gorm.DB) *SessionHandler {
	return &SessionHandler{db: db}
}

// CreatePage serves the session creation form.
// GET /scoring/session/create
func (h *SessionHandler) CreatePage(c *fiber.Ctx) error {
	return render(c, "session_create.html", nil)
}

// Create creates a session from the submitted form and redirects to the
// gamer list.
// POST /scoring/session/create (form: session_name, desc)
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("session_name"))
	if name == "" {
		return writeError(c, apperror.Validation("session_name is required"))
	}

	session := models.Session{Name: name, Description: c.FormValue("desc")}
	if err := h.db.Create(&session).Error; err != nil {
		return writeError(c, apperror.FromStore(err, "session could not be created"))
	}
	return c.Redirect("/scoring/gamer/list", fiber.StatusSeeOther)
}
