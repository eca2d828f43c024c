// services/score_service.go - game posting and score aggregation
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gamenight/apperror"
	"gamenight/models"

	"gorm.io/gorm"
)

// ScoreEntry is one point award in a game post. Exactly one of TeamID and
// GamerID is used, depending on the game type.
type ScoreEntry struct {
	TeamID  *uint `json:"team_id"`
	GamerID *uint `json:"gamer_id"`
	Points  int   `json:"points"`
}

type ScoreService struct {
	db *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db}
}

// busyRetries bounds how often a game post is replayed when SQLite reports
// the database locked. The DSN busy_timeout already absorbs short contention;
// this catches the deadline running out under sustained load.
const busyRetries = 3

// PostGame records a game and all of its scores in a single transaction.
//
// For a team entry the entry's full point value is applied to every current
// member of the team (not split between them); for an individual entry it is
// applied to the one gamer. Each gamer update is a single atomic increment,
// so two concurrent posts touching the same gamer both land. An empty entry
// list is allowed and just creates the game.
func (s *ScoreService) PostGame(sessionID uint, name string, gameType models.GameType, entries []ScoreEntry) (*models.Game, error) {
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	if !gameType.Valid() {
		return nil, apperror.Validation(`game_type must be "team" or "individual"`)
	}
	for i, entry := range entries {
		if gameType == models.GameTypeTeam && entry.TeamID == nil {
			return nil, apperror.Validation("scores[%d]: team_id is required for team games", i)
		}
		if gameType == models.GameTypeIndividual && entry.GamerID == nil {
			return nil, apperror.Validation("scores[%d]: gamer_id is required for individual games", i)
		}
	}

	var game *models.Game
	err := withBusyRetry(func() error {
		game = &models.Game{SessionID: sessionID, Name: name, GameType: gameType}
		return s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(game).Error; err != nil {
				return apperror.FromStore(err, "invalid session ID")
			}
			for _, entry := range entries {
				if err := recordEntry(tx, game, entry); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		var appErr *apperror.Error
		if !errors.As(err, &appErr) {
			// Commit-time failures come back unclassified.
			return nil, apperror.FromStore(err, "game could not be recorded")
		}
		return nil, err
	}
	return game, nil
}

func recordEntry(tx *gorm.DB, game *models.Game, entry ScoreEntry) error {
	if game.GameType == models.GameTypeTeam {
		score := models.GameScore{GameID: game.ID, TeamID: entry.TeamID, Points: entry.Points}
		if err := tx.Create(&score).Error; err != nil {
			return apperror.FromStore(err, "invalid team ID")
		}

		var memberIDs []uint
		if err := tx.Model(&models.TeamMember{}).
			Where("team_id = ?", *entry.TeamID).
			Pluck("gamer_id", &memberIDs).Error; err != nil {
			return apperror.FromStore(err, "failed to resolve team members")
		}
		for _, gamerID := range memberIDs {
			if err := applyPoints(tx, gamerID, entry.Points, game.Name); err != nil {
				return err
			}
		}
		return nil
	}

	score := models.GameScore{GameID: game.ID, GamerID: entry.GamerID, Points: entry.Points}
	if err := tx.Create(&score).Error; err != nil {
		return apperror.FromStore(err, "invalid gamer ID")
	}
	return applyPoints(tx, *entry.GamerID, entry.Points, game.Name)
}

// applyPoints adds points to a gamer's running total and appends the
// "<game>: +<points>" line to their history, both in one UPDATE so there is
// no read-modify-write window to lose an update in.
func applyPoints(tx *gorm.DB, gamerID uint, points int, gameName string) error {
	line := fmt.Sprintf("%s: +%d", gameName, points)
	res := tx.Model(&models.Gamer{}).Where("id = ?", gamerID).Updates(map[string]interface{}{
		"total_points": gorm.Expr("total_points + ?", points),
		"points_history": gorm.Expr(
			"CASE WHEN points_history = '' THEN ? ELSE points_history || char(10) || ? END",
			line, line,
		),
	})
	if res.Error != nil {
		return apperror.FromStore(res.Error, "failed to update gamer points")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("gamer", gamerID)
	}
	return nil
}

func withBusyRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < busyRetries; attempt++ {
		err = fn()
		if err == nil || !isBusy(err) {
			return err
		}
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	return err
}

// isBusy matches both classified busy errors and raw ones escaping from the
// transaction commit itself.
func isBusy(err error) bool {
	if errors.Is(err, apperror.ErrBusy) {
		return true
	}
	text := err.Error()
	return strings.Contains(text, "database is locked") || strings.Contains(text, "SQLITE_BUSY")
}

// ListGames returns all games, most recently played first.
func (s *ScoreService) ListGames() ([]models.Game, error) {
	var games []models.Game
	if err := s.db.Order("date_played DESC, id DESC").Find(&games).Error; err != nil {
		return nil, apperror.FromStore(err, "failed to list games")
	}
	return games, nil
}

// GameScoreDetail is one score row of a game, enriched with the
// participant's display name. The names come from LEFT JOINs so a score
// whose participant was deleted still shows up, with a null name.
type GameScoreDetail struct {
	Points    int     `json:"points"`
	TeamID    *uint   `json:"team_id"`
	GamerID   *uint   `json:"gamer_id"`
	TeamName  *string `json:"team_name"`
	GamerName *string `json:"gamer_name"`
}

type GameDetail struct {
	models.Game
	Scores []GameScoreDetail `json:"scores"`
}

// GetGame returns one game together with its resolved scores.
func (s *ScoreService) GetGame(id uint) (*GameDetail, error) {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("game", id)
		}
		return nil, apperror.FromStore(err, "failed to load game")
	}

	scores := make([]GameScoreDetail, 0)
	if err := s.db.Table("game_scores").
		Select("game_scores.points, game_scores.team_id, game_scores.gamer_id, teams.name AS team_name, gamers.name AS gamer_name").
		Joins("LEFT JOIN teams ON teams.id = game_scores.team_id").
		Joins("LEFT JOIN gamers ON gamers.id = game_scores.gamer_id").
		Where("game_scores.game_id = ?", id).
		Order("game_scores.id").
		Scan(&scores).Error; err != nil {
		return nil, apperror.FromStore(err, "failed to load game scores")
	}

	return &GameDetail{Game: game, Scores: scores}, nil
}

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	Name          string `json:"name"`
	TotalPoints   int    `json:"total_points"`
	PointsHistory string `json:"points_history"`
}

// Leaderboard returns every gamer ordered by total points descending.
func (s *ScoreService) Leaderboard() ([]LeaderboardEntry, error) {
	entries := make([]LeaderboardEntry, 0)
	if err := s.db.Model(&models.Gamer{}).
		Select("name, total_points, points_history").
		Order("total_points DESC").
		Scan(&entries).Error; err != nil {
		return nil, apperror.FromStore(err, "failed to load leaderboard")
	}
	return entries, nil
}

// RecomputeTotal derives a gamer's total from game_scores rows: points
// awarded directly plus points awarded to teams the gamer is a member of.
// total_points is a denormalized copy of this value; RecomputeTotal exists
// so tests and operators can check the two never drift.
func (s *ScoreService) RecomputeTotal(gamerID uint) (int, error) {
	var total int
	err := s.db.Raw(`
		SELECT COALESCE((SELECT SUM(points) FROM game_scores WHERE gamer_id = ?), 0)
		     + COALESCE((SELECT SUM(gs.points)
		                 FROM game_scores gs
		                 JOIN team_members tm ON tm.team_id = gs.team_id
		                 WHERE tm.gamer_id = ?), 0)`,
		gamerID, gamerID,
	).Scan(&total).Error
	if err != nil {
		return 0, apperror.FromStore(err, "failed to recompute total")
	}
	return total, nil
}

// TotalDrift reports a gamer whose stored total no longer matches the
// GameScore-derived sum.
type TotalDrift struct {
	GamerID uint   `json:"gamer_id"`
	Name    string `json:"name"`
	Stored  int    `json:"stored"`
	Derived int    `json:"derived"`
}

// ReconcileTotals compares every gamer's stored total against the derived
// sum. The derived sum uses current team membership, so it only matches
// exactly while rosters are stable between scoring and reconciliation.
func (s *ScoreService) ReconcileTotals() ([]TotalDrift, error) {
	var gamers []models.Gamer
	if err := s.db.Find(&gamers).Error; err != nil {
		return nil, apperror.FromStore(err, "failed to list gamers")
	}

	drifts := make([]TotalDrift, 0)
	for _, gamer := range gamers {
		derived, err := s.RecomputeTotal(gamer.ID)
		if err != nil {
			return nil, err
		}
		if derived != gamer.TotalPoints {
			drifts = append(drifts, TotalDrift{
				GamerID: gamer.ID,
				Name:    gamer.Name,
				Stored:  gamer.TotalPoints,
				Derived: derived,
			})
		}
	}
	return drifts, nil
}
