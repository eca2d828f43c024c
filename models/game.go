// models/game.go
package models

import "time"

type GameType string

const (
	GameTypeTeam       GameType = "team"
	GameTypeIndividual GameType = "individual"
)

// Valid reports whether t is one of the two supported game types.
func (t GameType) Valid() bool {
	return t == GameTypeTeam || t == GameTypeIndividual
}

// Game is a single scored activity. There is no update path: once scores are
// recorded a game is immutable.
type Game struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SessionID  uint      `json:"session_id" gorm:"not null;index"`
	Session    *Session  `json:"-" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	Name       string    `json:"name" gorm:"not null;size:100"`
	DatePlayed time.Time `json:"date_played" gorm:"autoCreateTime"`
	GameType   GameType  `json:"game_type" gorm:"not null;size:16;check:game_type IN ('team','individual')"`
}

func (Game) TableName() string {
	return "games"
}

// GameScore is one recorded point award for one game, tied to exactly one
// participant. The check constraint makes the exactly-one rule a store-level
// invariant rather than an application convention.
type GameScore struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	GameID  uint   `json:"game_id" gorm:"not null;index"`
	Game    *Game  `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	TeamID  *uint  `json:"team_id" gorm:"check:chk_one_participant,(team_id IS NULL AND gamer_id IS NOT NULL) OR (team_id IS NOT NULL AND gamer_id IS NULL)"`
	Team    *Team  `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	GamerID *uint  `json:"gamer_id"`
	Gamer   *Gamer `json:"-" gorm:"foreignKey:GamerID;constraint:OnDelete:CASCADE"`
	Points  int    `json:"points" gorm:"not null"`
}

func (GameScore) TableName() string {
	return "game_scores"
}
