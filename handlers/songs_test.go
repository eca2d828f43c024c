package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"gamenight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSongNormalizesURL(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postForm(t, "/karaoke/add_song", url.Values{
		"title":       {"Bohemian Rhapsody"},
		"youtube_url": {"https://www.youtube.com/watch?v=fJ9rUzIMcZQ&t=30"},
		"name":        {"alice"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/karaoke/songs", resp.Header.Get("Location"))

	var song models.Song
	require.NoError(t, env.karaokeDB.First(&song).Error)
	assert.Equal(t, "https://www.youtube.com/embed/fJ9rUzIMcZQ", song.YoutubeURL)
	assert.Equal(t, "Bohemian Rhapsody", song.Title)
	assert.Equal(t, "alice", song.Name)
}

func TestAddSongMissingFields(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postForm(t, "/karaoke/add_song", url.Values{
		"title": {"Bohemian Rhapsody"},
		"name":  {"alice"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "title, youtube_url, and name are required", body.Error)

	var count int64
	require.NoError(t, env.karaokeDB.Model(&models.Song{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSongCatalogPages(t *testing.T) {
	env := newTestEnv(t)

	song := models.Song{
		Title:      "Africa",
		YoutubeURL: "https://www.youtube.com/embed/FTQbiNvZqaY",
		Name:       "bob",
	}
	require.NoError(t, env.karaokeDB.Create(&song).Error)

	resp := env.get(t, "/karaoke/songs")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Africa")
	assert.Contains(t, body, "bob")

	resp = env.get(t, "/karaoke/songs/1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = readBody(t, resp)
	assert.Contains(t, body, "https://www.youtube.com/embed/FTQbiNvZqaY")
}

func TestSongDetailNotFoundRendersInlineMessage(t *testing.T) {
	env := newTestEnv(t)

	resp := env.get(t, "/karaoke/songs/999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Song not found")
}
