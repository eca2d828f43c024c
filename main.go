// main.go
package main

import (
	"log"
	"os"

	"gamenight/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	scoringPath := getEnv("SCORING_DB_PATH", "scoring.db")
	karaokePath := getEnv("KARAOKE_DB_PATH", "karaoke.db")

	scoringDB, err := database.Open(scoringPath)
	if err != nil {
		log.Fatalf("Failed to open scoring database: %v", err)
	}
	defer database.Close(scoringDB)

	if err := database.MigrateScoring(scoringDB); err != nil {
		log.Fatalf("Failed to migrate scoring database: %v", err)
	}

	karaokeDB, err := database.Open(karaokePath)
	if err != nil {
		log.Fatalf("Failed to open karaoke database: %v", err)
	}
	defer database.Close(karaokeDB)

	if err := database.MigrateKaraoke(karaokeDB); err != nil {
		log.Fatalf("Failed to migrate karaoke database: %v", err)
	}

	app := newApp(scoringDB, karaokeDB)

	port := getEnv("PORT", "3000")
	log.Printf("HTTP server starting on port %s", port)
	log.Printf("Scoring database: %s", scoringPath)
	log.Printf("Karaoke database: %s", karaokePath)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
