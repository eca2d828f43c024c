package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"gamenight/database"
	"gamenight/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	app       *fiber.App
	scoringDB *gorm.DB
	karaokeDB *gorm.DB
}

// newTestEnv wires the full route table against fresh temp-file databases,
// mirroring the wiring in app.go.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	scoringDB, err := database.Open(filepath.Join(dir, "scoring.db"))
	require.NoError(t, err)
	require.NoError(t, database.MigrateScoring(scoringDB))

	karaokeDB, err := database.Open(filepath.Join(dir, "karaoke.db"))
	require.NoError(t, err)
	require.NoError(t, database.MigrateKaraoke(karaokeDB))

	t.Cleanup(func() {
		_ = database.Close(scoringDB)
		_ = database.Close(karaokeDB)
	})

	scoreService := services.NewScoreService(scoringDB)
	teamService := services.NewTeamService(scoringDB)

	sessions := NewSessionHandler(scoringDB)
	gamers := NewGamerHandler(scoringDB)
	teams := NewTeamHandler(teamService)
	games := NewGameHandler(scoreService)
	leaderboard := NewLeaderboardHandler(scoreService)
	songs := NewSongHandler(karaokeDB)

	app := fiber.New()
	app.Get("/", Index)

	scoring := app.Group("/scoring")
	scoring.Get("/session/create", sessions.CreatePage)
	scoring.Post("/session/create", sessions.Create)
	scoring.Get("/gamer/create", gamers.CreatePage)
	scoring.Post("/gamer/create", gamers.Create)
	scoring.Get("/gamer/list", gamers.ListPage)
	scoring.Get("/gamers/:id", gamers.Get)
	scoring.Get("/teams", teams.List)
	scoring.Post("/teams", teams.Create)
	scoring.Post("/teams/:id/members", teams.AddMember)
	scoring.Get("/games", games.List)
	scoring.Post("/games", games.Create)
	scoring.Get("/games/:id", games.Get)
	scoring.Get("/leaderboard", leaderboard.Get)

	karaoke := app.Group("/karaoke")
	karaoke.Get("/add_song", songs.AddPage)
	karaoke.Post("/add_song", songs.Add)
	karaoke.Get("/songs", songs.ListPage)
	karaoke.Get("/songs/:id", songs.DetailPage)

	return &testEnv{app: app, scoringDB: scoringDB, karaokeDB: karaokeDB}
}

func (env *testEnv) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (env *testEnv) postJSON(t *testing.T, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (env *testEnv) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
