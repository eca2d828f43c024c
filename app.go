// app.go - Fiber app assembly and route wiring
package main

import (
	"os"
	"time"

	"gamenight/handlers"
	"gamenight/middleware"
	"gamenight/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// newApp builds the HTTP app around the two database handles. Handlers get
// their dependencies here; nothing reaches for a global connection.
func newApp(scoringDB, karaokeDB *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency}) ${locals:requestId}\n",
	}))

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: "GET,POST,OPTIONS",
	}))

	app.Use(middleware.RateLimit())

	scoreService := services.NewScoreService(scoringDB)
	teamService := services.NewTeamService(scoringDB)

	sessions := handlers.NewSessionHandler(scoringDB)
	gamers := handlers.NewGamerHandler(scoringDB)
	teams := handlers.NewTeamHandler(teamService)
	games := handlers.NewGameHandler(scoreService)
	leaderboard := handlers.NewLeaderboardHandler(scoreService)
	songs := handlers.NewSongHandler(karaokeDB)

	app.Get("/", handlers.Index)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

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

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
