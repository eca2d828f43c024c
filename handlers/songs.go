// handlers/songs.go - karaoke catalog endpoints
package handlers

import (
	"errors"
	"strings"

	"gamenight/apperror"
	"gamenight/models"
	"gamenight/videolink"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SongHandler struct {
	db *gorm.DB
}

func NewSongHandler(db *gorm.DB) *SongHandler {
	return &SongHandler{db: db}
}

// AddPage serves the song submission form.
// GET /karaoke/add_song
func (h *SongHandler) AddPage(c *fiber.Ctx) error {
	return render(c, "add_song.html", nil)
}

// Add stores a song with its link normalized to embed form, then redirects
// to the catalog.
// POST /karaoke/add_song (form: title, youtube_url, name)
func (h *SongHandler) Add(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	youtubeURL := strings.TrimSpace(c.FormValue("youtube_url"))
	name := strings.TrimSpace(c.FormValue("name"))
	if title == "" || youtubeURL == "" || name == "" {
		return writeError(c, apperror.Validation("title, youtube_url, and name are required"))
	}

	song := models.Song{
		Title:      title,
		YoutubeURL: videolink.ToEmbedURL(youtubeURL),
		Name:       name,
	}
	if err := h.db.Create(&song).Error; err != nil {
		return writeError(c, apperror.FromStore(err, "song could not be saved"))
	}
	return c.Redirect("/karaoke/songs", fiber.StatusSeeOther)
}

// ListPage renders the song catalog table.
// GET /karaoke/songs
func (h *SongHandler) ListPage(c *fiber.Ctx) error {
	var songs []models.Song
	if err := h.db.Order("id").Find(&songs).Error; err != nil {
		return writeError(c, apperror.FromStore(err, "failed to list songs"))
	}
	return render(c, "songs.html", fiber.Map{"Songs": songs})
}

// DetailPage renders one song with its embedded player. A missing song still
// renders the page, with an inline message and a 404 status.
// GET /karaoke/songs/:id
func (h *SongHandler) DetailPage(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err)
	}

	var song models.Song
	if err := h.db.First(&song, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Status(fiber.StatusNotFound)
			return render(c, "song_detail.html", fiber.Map{"Message": "Song not found"})
		}
		return writeError(c, apperror.FromStore(err, "failed to load song"))
	}
	return render(c, "song_detail.html", fiber.Map{"Song": &song})
}
