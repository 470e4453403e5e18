package fpl

import (
	"strings"
	"time"

	"github.com/riskibarqy/fpl-insight/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insight/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-insight/internal/domain/player"
	"github.com/riskibarqy/fpl-insight/internal/domain/team"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

func mapBootstrap(payload bootstrapEnvelope) usecase.BootstrapData {
	teams := make([]team.Team, 0, len(payload.Teams))
	for _, item := range payload.Teams {
		teams = append(teams, team.Team{
			ID:        item.ID,
			Code:      item.Code,
			Name:      strings.TrimSpace(item.Name),
			ShortName: strings.TrimSpace(item.ShortName),
			Strength:  item.Strength,
		})
	}

	players := make([]player.Player, 0, len(payload.Elements))
	for _, item := range payload.Elements {
		position, _ := player.PositionFromElementType(item.ElementType)
		players = append(players, player.Player{
			ID:         item.ID,
			FirstName:  item.FirstName,
			SecondName: item.SecondName,
			WebName:    item.WebName,
			TeamID:     item.Team,
			Position:   position,
			Price:      item.NowCost,
			Stats: player.SeasonStats{
				TotalPoints:   item.TotalPoints,
				GoalsScored:   item.GoalsScored,
				Assists:       item.Assists,
				CleanSheets:   item.CleanSheets,
				Minutes:       item.Minutes,
				Bonus:         item.Bonus,
				YellowCards:   item.YellowCards,
				RedCards:      item.RedCards,
				Saves:         item.Saves,
				EventPoints:   item.EventPoints,
				PointsPerGame: item.PointsPerGame,
			},
			SelectedByPercent: item.SelectedByPercent,
			Form:              item.Form,
			Status:            player.NormalizeStatus(item.Status),
			News:              item.News,
		})
	}

	events := make([]gameweek.Event, 0, len(payload.Events))
	for _, item := range payload.Events {
		events = append(events, gameweek.Event{
			ID:         item.ID,
			Name:       item.Name,
			DeadlineAt: parseTime(item.DeadlineTime),
			IsCurrent:  item.IsCurrent,
			IsNext:     item.IsNext,
			Finished:   item.Finished,
		})
	}

	return usecase.BootstrapData{Teams: teams, Players: players, Events: events}
}

// mapFixtures drops fixtures without a gameweek; the upstream lists postponed
// matches with a null event until they are rescheduled.
func mapFixtures(items []fixtureWire) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		if item.Event == nil || *item.Event <= 0 {
			continue
		}
		started := item.Started != nil && *item.Started
		out = append(out, fixture.Fixture{
			ID:             item.ID,
			Gameweek:       *item.Event,
			HomeTeamID:     item.TeamH,
			AwayTeamID:     item.TeamA,
			HomeDifficulty: fixture.ClampDifficulty(item.TeamHDifficulty),
			AwayDifficulty: fixture.ClampDifficulty(item.TeamADifficulty),
			HomeScore:      item.TeamHScore,
			AwayScore:      item.TeamAScore,
			KickoffAt:      parseTime(item.KickoffTime),
			Started:        started,
			Finished:       item.Finished,
		})
	}
	return out
}

func mapLive(payload liveEnvelope) []usecase.LivePlayerUpdate {
	out := make([]usecase.LivePlayerUpdate, 0, len(payload.Elements))
	for _, item := range payload.Elements {
		stats := item.Stats
		if stats == nil {
			stats = map[string]any{}
		}
		out = append(out, usecase.LivePlayerUpdate{ID: item.ID, Stats: stats})
	}
	return out
}

func parseTime(raw *string) time.Time {
	if raw == nil {
		return time.Time{}
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
