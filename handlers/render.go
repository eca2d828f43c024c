// handlers/render.go - HTML page rendering from embedded templates
package handlers

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// render executes one embedded template into the response. The template runs
// into a buffer first so an execution error can still become a clean 500
// instead of a half-written page.
func render(c *fiber.Ctx, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// Index serves the landing page linking both apps.
// GET /
func Index(c *fiber.Ctx) error {
	return render(c, "index.html", nil)
}
