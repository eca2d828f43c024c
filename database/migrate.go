// database/migrate.go - schema migrations for the two database files
package database

import (
	"fmt"

	"gamenight/models"

	"gorm.io/gorm"
)

// MigrateScoring creates/updates the scoring schema: sessions, gamers,
// teams, team members, games and game scores, with the uniqueness and
// exactly-one-participant constraints carried by the model tags.
func MigrateScoring(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Session{},
		&models.Gamer{},
		&models.Team{},
		&models.TeamMember{},
		&models.Game{},
		&models.GameScore{},
	); err != nil {
		return fmt.Errorf("scoring migrations: %w", err)
	}

	// Read-path indexes not expressed in the model tags.
	db.Exec("CREATE INDEX IF NOT EXISTS idx_gamers_total_points ON gamers(total_points DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_games_date_played ON games(date_played DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_scores_team ON game_scores(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_game_scores_gamer ON game_scores(gamer_id)")

	return nil
}

// MigrateKaraoke creates/updates the karaoke schema.
func MigrateKaraoke(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Song{}); err != nil {
		return fmt.Errorf("karaoke migrations: %w", err)
	}
	return nil
}
