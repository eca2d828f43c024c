package database

import (
	"path/filepath"
	"testing"

	"gamenight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openScoringDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "scoring.db"))
	require.NoError(t, err)
	require.NoError(t, MigrateScoring(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestGameScoreExactlyOneParticipant(t *testing.T) {
	db := openScoringDB(t)

	session := models.Session{Name: "friday night"}
	require.NoError(t, db.Create(&session).Error)
	gamer := models.Gamer{Name: "alice"}
	require.NoError(t, db.Create(&gamer).Error)
	team := models.Team{SessionID: session.ID, Name: "reds"}
	require.NoError(t, db.Create(&team).Error)
	game := models.Game{SessionID: session.ID, Name: "darts", GameType: models.GameTypeIndividual}
	require.NoError(t, db.Create(&game).Error)

	// Neither participant set.
	err := db.Create(&models.GameScore{GameID: game.ID, Points: 5}).Error
	assert.ErrorContains(t, err, "CHECK constraint failed")

	// Both participants set.
	err = db.Create(&models.GameScore{GameID: game.ID, TeamID: &team.ID, GamerID: &gamer.ID, Points: 5}).Error
	assert.ErrorContains(t, err, "CHECK constraint failed")

	// Exactly one is fine, either way round.
	assert.NoError(t, db.Create(&models.GameScore{GameID: game.ID, GamerID: &gamer.ID, Points: 5}).Error)
	assert.NoError(t, db.Create(&models.GameScore{GameID: game.ID, TeamID: &team.ID, Points: 5}).Error)
}

func TestDuplicateGamerNameLeavesTableUnchanged(t *testing.T) {
	db := openScoringDB(t)

	require.NoError(t, db.Create(&models.Gamer{Name: "alice"}).Error)

	err := db.Create(&models.Gamer{Name: "alice"}).Error
	assert.ErrorContains(t, err, "UNIQUE constraint failed")

	var count int64
	require.NoError(t, db.Model(&models.Gamer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteSessionCascades(t *testing.T) {
	db := openScoringDB(t)

	session := models.Session{Name: "friday night"}
	require.NoError(t, db.Create(&session).Error)
	team := models.Team{SessionID: session.ID, Name: "reds"}
	require.NoError(t, db.Create(&team).Error)
	gamer := models.Gamer{Name: "alice"}
	require.NoError(t, db.Create(&gamer).Error)
	require.NoError(t, db.Create(&models.TeamMember{TeamID: team.ID, GamerID: gamer.ID}).Error)

	require.NoError(t, db.Delete(&models.Session{}, session.ID).Error)

	var teams, memberships int64
	require.NoError(t, db.Model(&models.Team{}).Count(&teams).Error)
	require.NoError(t, db.Model(&models.TeamMember{}).Count(&memberships).Error)
	assert.EqualValues(t, 0, teams)
	assert.EqualValues(t, 0, memberships)

	// The gamer itself survives; only the membership rows cascade.
	var gamers int64
	require.NoError(t, db.Model(&models.Gamer{}).Count(&gamers).Error)
	assert.EqualValues(t, 1, gamers)
}

func TestTeamNameUniquePerSession(t *testing.T) {
	db := openScoringDB(t)

	a := models.Session{Name: "a"}
	b := models.Session{Name: "b"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	require.NoError(t, db.Create(&models.Team{SessionID: a.ID, Name: "reds"}).Error)
	assert.ErrorContains(t, db.Create(&models.Team{SessionID: a.ID, Name: "reds"}).Error, "UNIQUE constraint failed")

	// Same name in another session is allowed.
	assert.NoError(t, db.Create(&models.Team{SessionID: b.ID, Name: "reds"}).Error)
}
