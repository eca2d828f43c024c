// Package videolink normalizes user-submitted video links into the canonical
// embeddable form used by the karaoke catalog.
package videolink

import (
	"net/url"
	"strings"
)

const embedBase = "https://www.youtube.com/embed/"

// ToEmbedURL converts a YouTube link to its embed form:
//
//	https://youtu.be/abc123              -> https://www.youtube.com/embed/abc123
//	https://www.youtube.com/watch?v=abc  -> https://www.youtube.com/embed/abc
//
// Anything it does not recognize, including unparseable input, is returned
// unchanged. Embed-form URLs therefore pass through as-is, which makes the
// function idempotent.
func ToEmbedURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	switch strings.ToLower(u.Hostname()) {
	case "youtu.be":
		id := strings.TrimPrefix(u.EscapedPath(), "/")
		if i := strings.IndexByte(id, '/'); i >= 0 {
			id = id[:i]
		}
		if id == "" {
			return raw
		}
		return embedBase + id
	case "youtube.com", "www.youtube.com", "m.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			return embedBase + v
		}
	}
	return raw
}
