package fixture

import (
	"fmt"
	"time"
)

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Fixture represents one scheduled match between two teams.
// Gameweek is zero while the match has not been assigned to a round.
type Fixture struct {
	ID             int
	Gameweek       int
	HomeTeamID     int
	AwayTeamID     int
	HomeDifficulty int
	AwayDifficulty int
	HomeScore      *int
	AwayScore      *int
	KickoffAt      time.Time
	Started        bool
	Finished       bool
}

func (f Fixture) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("fixture id must be greater than zero")
	}
	if f.HomeTeamID <= 0 || f.AwayTeamID <= 0 {
		return fmt.Errorf("fixture %d: both team ids are required", f.ID)
	}
	if f.HomeTeamID == f.AwayTeamID {
		return fmt.Errorf("fixture %d: home and away team cannot match", f.ID)
	}

	return nil
}

// Involves reports whether teamID plays in this fixture.
func (f Fixture) Involves(teamID int) bool {
	return teamID > 0 && (f.HomeTeamID == teamID || f.AwayTeamID == teamID)
}

// Side resolves the opponent and difficulty from teamID's point of view.
// The home side reads HomeDifficulty, the away side reads AwayDifficulty.
func (f Fixture) Side(teamID int) (opponentID int, difficulty int, isHome bool) {
	if f.HomeTeamID == teamID {
		return f.AwayTeamID, ClampDifficulty(f.HomeDifficulty), true
	}
	return f.HomeTeamID, ClampDifficulty(f.AwayDifficulty), false
}

// ClampDifficulty keeps a rating inside the 1..5 band.
func ClampDifficulty(value int) int {
	if value < MinDifficulty {
		return MinDifficulty
	}
	if value > MaxDifficulty {
		return MaxDifficulty
	}
	return value
}

// PlayerFixture is a derived view of an upcoming fixture for one player.
// It is computed on demand and never stored.
type PlayerFixture struct {
	Gameweek   int
	FixtureID  int
	Opponent   string
	OpponentID int
	Difficulty int
	IsHome     bool
	KickoffAt  time.Time
}
