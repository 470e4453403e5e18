package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/fpl-insight/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insight/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-insight/internal/domain/player"
	"github.com/riskibarqy/fpl-insight/internal/domain/team"
)

const (
	SeasonGameweeks = 38
	SeedCurrentGW   = 1
)

var seasonStart = time.Date(2024, 8, 16, 17, 30, 0, 0, time.UTC)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Code: 3, Name: "Arsenal", ShortName: "ARS", Strength: 4},
		{ID: 2, Code: 7, Name: "Aston Villa", ShortName: "AVL", Strength: 3},
		{ID: 3, Code: 91, Name: "Bournemouth", ShortName: "BOU", Strength: 3},
		{ID: 4, Code: 94, Name: "Brentford", ShortName: "BRE", Strength: 3},
		{ID: 5, Code: 36, Name: "Brighton", ShortName: "BHA", Strength: 3},
		{ID: 6, Code: 8, Name: "Chelsea", ShortName: "CHE", Strength: 4},
		{ID: 7, Code: 31, Name: "Crystal Palace", ShortName: "CRY", Strength: 3},
		{ID: 8, Code: 11, Name: "Everton", ShortName: "EVE", Strength: 2},
		{ID: 9, Code: 54, Name: "Fulham", ShortName: "FUL", Strength: 3},
		{ID: 10, Code: 40, Name: "Ipswich", ShortName: "IPS", Strength: 2},
		{ID: 11, Code: 13, Name: "Leicester", ShortName: "LEI", Strength: 2},
		{ID: 12, Code: 14, Name: "Liverpool", ShortName: "LIV", Strength: 5},
		{ID: 13, Code: 43, Name: "Man City", ShortName: "MCI", Strength: 5},
		{ID: 14, Code: 1, Name: "Man Utd", ShortName: "MUN", Strength: 3},
		{ID: 15, Code: 4, Name: "Newcastle", ShortName: "NEW", Strength: 4},
		{ID: 16, Code: 17, Name: "Nott'm Forest", ShortName: "NFO", Strength: 3},
		{ID: 17, Code: 20, Name: "Southampton", ShortName: "SOU", Strength: 2},
		{ID: 18, Code: 6, Name: "Spurs", ShortName: "TOT", Strength: 3},
		{ID: 19, Code: 21, Name: "West Ham", ShortName: "WHU", Strength: 3},
		{ID: 20, Code: 39, Name: "Wolves", ShortName: "WOL", Strength: 2},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		seedPlayer(1, "David", "Raya Martin", "Raya", 1, player.PositionGoalkeeper, 55, 150, "4.3", "22.1"),
		seedPlayer(2, "William", "Saliba", "Saliba", 1, player.PositionDefender, 60, 143, "4.0", "30.5"),
		seedPlayer(3, "Bukayo", "Saka", "Saka", 1, player.PositionMidfielder, 100, 184, "6.1", "35.2"),
		seedPlayer(4, "Kai", "Havertz", "Havertz", 1, player.PositionForward, 80, 152, "4.8", "12.4"),
		seedPlayer(5, "Ollie", "Watkins", "Watkins", 2, player.PositionForward, 90, 186, "5.6", "24.8"),
		seedPlayer(6, "Morgan", "Rogers", "Rogers", 2, player.PositionMidfielder, 55, 149, "4.9", "9.3"),
		seedPlayer(7, "Antoine", "Semenyo", "Semenyo", 3, player.PositionMidfielder, 55, 139, "4.2", "6.0"),
		seedPlayer(8, "Bryan", "Mbeumo", "Mbeumo", 4, player.PositionMidfielder, 75, 236, "7.0", "41.7"),
		seedPlayer(9, "Yoane", "Wissa", "Wissa", 4, player.PositionForward, 65, 180, "5.4", "14.1"),
		seedPlayer(10, "Danny", "Welbeck", "Welbeck", 5, player.PositionForward, 55, 106, "3.1", "3.2"),
		seedPlayer(11, "Cole", "Palmer", "Palmer", 6, player.PositionMidfielder, 105, 214, "5.9", "48.9"),
		seedPlayer(12, "Nicolas", "Jackson", "N.Jackson", 6, player.PositionForward, 75, 150, "3.8", "11.6"),
		seedPlayer(13, "Daniel", "Muñoz", "Muñoz", 7, player.PositionDefender, 45, 152, "4.4", "10.8"),
		seedPlayer(14, "Jordan", "Pickford", "Pickford", 8, player.PositionGoalkeeper, 50, 158, "4.1", "13.0"),
		seedPlayer(15, "Alex", "Iwobi", "Iwobi", 9, player.PositionMidfielder, 55, 161, "4.7", "8.5"),
		seedPlayer(16, "Liam", "Delap", "Delap", 10, player.PositionForward, 55, 118, "3.5", "7.9"),
		seedPlayer(17, "Jamie", "Vardy", "Vardy", 11, player.PositionForward, 55, 106, "2.6", "4.4"),
		seedPlayer(18, "Mohamed", "Salah", "M.Salah", 12, player.PositionMidfielder, 125, 344, "9.8", "70.1"),
		seedPlayer(19, "Virgil", "van Dijk", "Virgil", 12, player.PositionDefender, 60, 171, "4.6", "19.3"),
		seedPlayer(20, "Alisson", "Ramses Becker", "Alisson", 12, player.PositionGoalkeeper, 55, 129, "4.0", "8.7"),
		seedPlayer(21, "Erling", "Haaland", "Haaland", 13, player.PositionForward, 150, 217, "5.9", "45.6"),
		seedPlayer(22, "Josko", "Gvardiol", "Gvardiol", 13, player.PositionDefender, 60, 160, "4.7", "12.3"),
		seedPlayer(23, "Bruno", "Borges Fernandes", "B.Fernandes", 14, player.PositionMidfielder, 85, 174, "5.2", "16.9"),
		seedPlayer(24, "Alexander", "Isak", "Isak", 15, player.PositionForward, 95, 211, "6.5", "33.4"),
		seedPlayer(25, "Chris", "Wood", "Wood", 16, player.PositionForward, 60, 200, "5.9", "27.2"),
		seedPlayer(26, "Matz", "Sels", "Sels", 16, player.PositionGoalkeeper, 50, 154, "4.3", "11.1"),
		seedPlayer(27, "Aaron", "Ramsdale", "Ramsdale", 17, player.PositionGoalkeeper, 45, 90, "2.9", "2.4"),
		seedPlayer(28, "Son", "Heung-min", "Son", 18, player.PositionMidfielder, 100, 139, "3.9", "6.3"),
		seedPlayer(29, "Jarrod", "Bowen", "Bowen", 19, player.PositionMidfielder, 75, 193, "5.4", "15.0"),
		seedPlayer(30, "Matheus", "Santos Carneiro Da Cunha", "Cunha", 20, player.PositionForward, 65, 178, "5.8", "18.2"),
	}
}

func seedPlayer(id int, first, second, web string, teamID int, position player.Position, price, points int, form, selected string) player.Player {
	return player.Player{
		ID:                id,
		FirstName:         first,
		SecondName:        second,
		WebName:           web,
		TeamID:            teamID,
		Position:          position,
		Price:             price,
		Stats:             player.SeasonStats{TotalPoints: points},
		SelectedByPercent: selected,
		Form:              form,
		Status:            player.StatusAvailable,
	}
}

// SeedEvents returns a full season of weekly gameweeks with SeedCurrentGW flagged current.
func SeedEvents() []gameweek.Event {
	out := make([]gameweek.Event, 0, SeasonGameweeks)
	for gw := 1; gw <= SeasonGameweeks; gw++ {
		out = append(out, gameweek.Event{
			ID:         gw,
			Name:       fmt.Sprintf("Gameweek %d", gw),
			DeadlineAt: seasonStart.AddDate(0, 0, 7*(gw-1)).Add(-90 * time.Minute),
			IsCurrent:  gw == SeedCurrentGW,
			IsNext:     gw == SeedCurrentGW+1,
		})
	}
	return out
}

// SeedFixtures builds a double round-robin over SeedTeams, one round per
// gameweek. Difficulty for each side follows the opponent's strength.
func SeedFixtures() []fixture.Fixture {
	teams := SeedTeams()
	strength := make(map[int]int, len(teams))
	rotation := make([]int, len(teams))
	for i, item := range teams {
		strength[item.ID] = item.Strength
		rotation[i] = item.ID
	}

	rounds := len(rotation) - 1
	perRound := len(rotation) / 2
	out := make([]fixture.Fixture, 0, 2*rounds*perRound)
	nextID := 1
	for leg := 0; leg < 2; leg++ {
		order := append([]int(nil), rotation...)
		for round := 0; round < rounds; round++ {
			gw := leg*rounds + round + 1
			kickoff := seasonStart.AddDate(0, 0, 7*(gw-1)+1).Add(-150 * time.Minute)
			for i := 0; i < perRound; i++ {
				home, away := order[i], order[len(order)-1-i]
				if (i == 0 && round%2 == 1) != (leg == 1) {
					home, away = away, home
				}
				out = append(out, fixture.Fixture{
					ID:             nextID,
					Gameweek:       gw,
					HomeTeamID:     home,
					AwayTeamID:     away,
					HomeDifficulty: seedDifficulty(strength[away]),
					AwayDifficulty: seedDifficulty(strength[home]),
					KickoffAt:      kickoff.Add(time.Duration(i) * 15 * time.Minute),
				})
				nextID++
			}
			// circle method: keep the first slot, rotate the rest clockwise.
			last := order[len(order)-1]
			copy(order[2:], order[1:len(order)-1])
			order[1] = last
		}
	}
	return out
}

func seedDifficulty(opponentStrength int) int {
	return fixture.ClampDifficulty(opponentStrength)
}
