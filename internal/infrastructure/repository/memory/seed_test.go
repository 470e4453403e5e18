package memory

import (
	"testing"

	"github.com/riskibarqy/fpl-insight/internal/domain/team"
)

func TestSeedFixtures_DoubleRoundRobin(t *testing.T) {
	teams := SeedTeams()
	items := SeedFixtures()

	wantTotal := len(teams) * (len(teams) - 1)
	if len(items) != wantTotal {
		t.Fatalf("unexpected fixture count: got=%d want=%d", len(items), wantTotal)
	}

	type pairing struct{ home, away int }
	seen := make(map[pairing]struct{}, len(items))
	perGameweek := make(map[int]map[int]int)
	for _, item := range items {
		if err := item.Validate(); err != nil {
			t.Fatalf("fixture %d invalid: %v", item.ID, err)
		}
		key := pairing{home: item.HomeTeamID, away: item.AwayTeamID}
		if _, ok := seen[key]; ok {
			t.Fatalf("pairing %d vs %d scheduled twice", key.home, key.away)
		}
		seen[key] = struct{}{}

		if perGameweek[item.Gameweek] == nil {
			perGameweek[item.Gameweek] = make(map[int]int)
		}
		perGameweek[item.Gameweek][item.HomeTeamID]++
		perGameweek[item.Gameweek][item.AwayTeamID]++
	}

	if len(perGameweek) != SeasonGameweeks {
		t.Fatalf("unexpected gameweek count: got=%d want=%d", len(perGameweek), SeasonGameweeks)
	}
	for gw, counts := range perGameweek {
		for teamID, n := range counts {
			if n != 1 {
				t.Fatalf("team %d plays %d times in gameweek %d", teamID, n, gw)
			}
		}
	}
}

func TestSeedPlayers_ReferenceKnownTeams(t *testing.T) {
	for _, item := range SeedTeams() {
		if err := item.Validate(); err != nil {
			t.Fatalf("team %d invalid: %v", item.ID, err)
		}
	}
	index := team.NewIndex(SeedTeams())
	for _, item := range SeedPlayers() {
		if err := item.Validate(); err != nil {
			t.Fatalf("player %d invalid: %v", item.ID, err)
		}
		if _, ok := index[item.TeamID]; !ok {
			t.Fatalf("player %d references unknown team %d", item.ID, item.TeamID)
		}
	}
}

func TestSeedEvents_FlagCurrent(t *testing.T) {
	events := SeedEvents()
	current := 0
	for _, item := range events {
		if err := item.Validate(); err != nil {
			t.Fatalf("event %d invalid: %v", item.ID, err)
		}
		if item.IsCurrent {
			current++
			if item.ID != SeedCurrentGW {
				t.Fatalf("unexpected current gameweek: got=%d want=%d", item.ID, SeedCurrentGW)
			}
		}
	}
	if current != 1 {
		t.Fatalf("expected exactly one current event, got %d", current)
	}
}
