// models/team.go
package models

// Team is a named collection of gamers within a session. Names are unique
// per session, not globally.
type Team struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	SessionID uint         `json:"session_id" gorm:"not null;uniqueIndex:uq_teams_session_name"`
	Session   *Session     `json:"-" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	Name      string       `json:"name" gorm:"not null;size:100;uniqueIndex:uq_teams_session_name"`
	Members   []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamMember links a gamer to a team. A gamer can be on any number of teams
// but only once per team.
type TeamMember struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	TeamID  uint   `json:"team_id" gorm:"not null;uniqueIndex:uq_team_members_team_gamer"`
	Team    *Team  `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	GamerID uint   `json:"gamer_id" gorm:"not null;uniqueIndex:uq_team_members_team_gamer"`
	Gamer   *Gamer `json:"gamer,omitempty" gorm:"foreignKey:GamerID;constraint:OnDelete:CASCADE"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
