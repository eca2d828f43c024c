// models/gamer.go
package models

// Gamer is an individual participant with a running score.
//
// TotalPoints is denormalized for leaderboard reads; the game_scores table is
// the source of truth. It is only ever changed by the score-posting
// transaction, as an atomic in-SQL increment. PointsHistory is a
// newline-delimited log of "<game>: +<points>" lines, appended in the same
// statement.
type Gamer struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"not null;unique;size:100"`
	TotalPoints   int    `json:"total_points" gorm:"not null;default:0"`
	PointsHistory string `json:"points_history" gorm:"type:text;not null;default:''"`
}

func (Gamer) TableName() string {
	return "gamers"
}
