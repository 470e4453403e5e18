package usecase

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/riskibarqy/fpl-insight/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insight/internal/domain/player"
)

const averageFDRWindow = 5

type PlayerSort string

const (
	SortByPoints   PlayerSort = "points"
	SortByForm     PlayerSort = "form"
	SortBySelected PlayerSort = "selected"
	SortByPrice    PlayerSort = "price"
)

func ParsePlayerSort(raw string) (PlayerSort, bool) {
	switch PlayerSort(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SortByPoints:
		return SortByPoints, true
	case SortByForm:
		return SortByForm, true
	case SortBySelected:
		return SortBySelected, true
	case SortByPrice:
		return SortByPrice, true
	default:
		return "", false
	}
}

// GetPlayerFixtures returns up to count unfinished fixtures for the player's
// team from the current gameweek on, one per gameweek in ascending order.
// Unknown players yield an empty slice.
func (s *Store) GetPlayerFixtures(playerID, count int) []fixture.PlayerFixture {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.playerLocked(playerID)
	if !ok {
		return []fixture.PlayerFixture{}
	}
	return s.teamFixturesLocked(item.TeamID, count)
}

// TeamFixtures is GetPlayerFixtures keyed by team.
func (s *Store) TeamFixtures(teamID, count int) []fixture.PlayerFixture {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teamFixturesLocked(teamID, count)
}

func (s *Store) teamFixturesLocked(teamID, count int) []fixture.PlayerFixture {
	out := make([]fixture.PlayerFixture, 0, max(count, 0))
	if count <= 0 {
		return out
	}

	current := s.bootstrap.currentGameweek
	lastGameweek := 0
	// fixtures are ordered by gameweek then kickoff, so the first hit per
	// gameweek is the earliest one.
	for _, item := range s.fixtures.items {
		if item.Finished || item.Gameweek < current || !item.Involves(teamID) {
			continue
		}
		if item.Gameweek <= lastGameweek {
			continue
		}
		opponentID, difficulty, isHome := item.Side(teamID)
		out = append(out, fixture.PlayerFixture{
			Gameweek:   item.Gameweek,
			FixtureID:  item.ID,
			Opponent:   s.bootstrap.teamIndex.ShortName(opponentID),
			OpponentID: opponentID,
			Difficulty: difficulty,
			IsHome:     isHome,
			KickoffAt:  item.KickoffAt,
		})
		lastGameweek = item.Gameweek
		if len(out) == count {
			break
		}
	}
	return out
}

// GetAverageFDR is the mean difficulty of the player's next five fixtures, or
// 0 when there are none.
func (s *Store) GetAverageFDR(playerID int) float64 {
	items := s.GetPlayerFixtures(playerID, averageFDRWindow)
	if len(items) == 0 {
		return 0
	}
	total := 0
	for _, item := range items {
		total += item.Difficulty
	}
	return float64(total) / float64(len(items))
}

// GetTeamName returns the team's short name, or "" for an unknown id.
func (s *Store) GetTeamName(teamID int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bootstrap.teamIndex.ShortName(teamID)
}

// SearchPlayers ranks players whose names fuzzy-match query, closest first.
func (s *Store) SearchPlayers(query string, limit int) []player.Player {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return []player.Player{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	players := s.bootstrap.players
	targets := make([]string, len(players))
	for i, item := range players {
		targets[i] = item.WebName + " " + item.FullName()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		left, right := players[ranks[i].OriginalIndex], players[ranks[j].OriginalIndex]
		if left.Stats.TotalPoints != right.Stats.TotalPoints {
			return left.Stats.TotalPoints > right.Stats.TotalPoints
		}
		return left.ID < right.ID
	})

	out := make([]player.Player, 0, min(limit, len(ranks)))
	for _, rank := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, players[rank.OriginalIndex])
	}
	return out
}

// TopPlayers lists players by the given metric, descending. An empty position
// matches every position.
func (s *Store) TopPlayers(sortBy PlayerSort, position player.Position, limit int) []player.Player {
	if limit <= 0 {
		return []player.Player{}
	}

	s.mu.RLock()
	out := make([]player.Player, 0, len(s.bootstrap.players))
	for _, item := range s.bootstrap.players {
		if position != "" && item.Position != position {
			continue
		}
		out = append(out, item)
	}
	s.mu.RUnlock()

	metric := playerMetric(sortBy)
	sort.SliceStable(out, func(i, j int) bool {
		left, right := metric(out[i]), metric(out[j])
		if left != right {
			return left > right
		}
		return out[i].ID < out[j].ID
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func playerMetric(sortBy PlayerSort) func(player.Player) float64 {
	switch sortBy {
	case SortByForm:
		return player.Player.FormValue
	case SortBySelected:
		return player.Player.SelectedByValue
	case SortByPrice:
		return func(p player.Player) float64 { return float64(p.Price) }
	default:
		return func(p player.Player) float64 { return float64(p.Stats.TotalPoints) }
	}
}
