// services/team_service.go - team and roster management
package services

import (
	"gamenight/apperror"
	"gamenight/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// CreateTeam creates a team and its initial roster in one transaction, so a
// bad member ID leaves no half-created team behind.
func (s *TeamService) CreateTeam(sessionID uint, name string, memberIDs []uint) (*models.Team, error) {
	if name == "" {
		return nil, apperror.Validation("name is required")
	}

	team := &models.Team{SessionID: sessionID, Name: name}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return apperror.FromStore(err, "team name already exists or invalid session ID")
		}
		for _, gamerID := range memberIDs {
			member := models.TeamMember{TeamID: team.ID, GamerID: gamerID}
			if err := tx.Create(&member).Error; err != nil {
				return apperror.FromStore(err, "invalid or duplicate member ID")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// AddMember adds one gamer to a team's roster.
func (s *TeamService) AddMember(teamID, gamerID uint) error {
	member := models.TeamMember{TeamID: teamID, GamerID: gamerID}
	if err := s.db.Create(&member).Error; err != nil {
		return apperror.FromStore(err, "member already in team or invalid IDs")
	}
	return nil
}

// TeamMemberInfo is one roster entry in a team listing.
type TeamMemberInfo struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	TotalPoints int    `json:"total_points"`
}

// TeamWithMembers is a team with its roster resolved.
type TeamWithMembers struct {
	ID      uint             `json:"id"`
	Name    string           `json:"name"`
	Members []TeamMemberInfo `json:"members"`
}

// ListTeams returns all teams with their member rosters resolved
// (Team -> TeamMember -> Gamer).
func (s *TeamService) ListTeams() ([]TeamWithMembers, error) {
	var teams []models.Team
	if err := s.db.Preload("Members.Gamer").Order("id").Find(&teams).Error; err != nil {
		return nil, apperror.FromStore(err, "failed to list teams")
	}

	result := make([]TeamWithMembers, 0, len(teams))
	for _, team := range teams {
		members := make([]TeamMemberInfo, 0, len(team.Members))
		for _, m := range team.Members {
			if m.Gamer == nil {
				continue
			}
			members = append(members, TeamMemberInfo{
				ID:          m.Gamer.ID,
				Name:        m.Gamer.Name,
				TotalPoints: m.Gamer.TotalPoints,
			})
		}
		result = append(result, TeamWithMembers{ID: team.ID, Name: team.Name, Members: members})
	}
	return result, nil
}
