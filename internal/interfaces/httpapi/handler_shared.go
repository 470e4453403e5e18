package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/fpl-insight/internal/domain/fantasy"
	"github.com/riskibarqy/fpl-insight/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insight/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-insight/internal/domain/player"
	"github.com/riskibarqy/fpl-insight/internal/domain/team"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

type addRosterPlayerRequest struct {
	PlayerID int `json:"playerId" validate:"required,gt=0"`
}

type liveStatsRequest struct {
	Updates []liveStatsUpdateRequest `json:"updates" validate:"required,dive"`
}

type liveStatsUpdateRequest struct {
	ID    int            `json:"id" validate:"required,gt=0"`
	Stats map[string]any `json:"stats" validate:"required"`
}

type statusDTO struct {
	Status          string         `json:"status"`
	IsLoading       bool           `json:"isLoading"`
	Error           string         `json:"error,omitempty"`
	Degraded        bool           `json:"degraded"`
	DegradedReason  string         `json:"degradedReason,omitempty"`
	BootstrapSource string         `json:"bootstrapSource"`
	FixturesSource  string         `json:"fixturesSource"`
	CurrentGameweek int            `json:"currentGameweek"`
	NextGameweek    int            `json:"nextGameweek"`
	Version         uint64         `json:"version"`
	Cache           *cacheStatsDTO `json:"cache,omitempty"`
}

type cacheStatsDTO struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Entries int    `json:"entries"`
}

type teamDTO struct {
	ID        int    `json:"id"`
	Code      int    `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Strength  int    `json:"strength"`
}

type gameweekDTO struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	DeadlineAt *time.Time `json:"deadlineAt,omitempty"`
	IsCurrent  bool       `json:"isCurrent"`
	IsNext     bool       `json:"isNext"`
	Finished   bool       `json:"finished"`
}

type fixtureDTO struct {
	ID             int        `json:"id"`
	Gameweek       int        `json:"gameweek"`
	HomeTeamID     int        `json:"homeTeamId"`
	HomeTeam       string     `json:"homeTeam"`
	AwayTeamID     int        `json:"awayTeamId"`
	AwayTeam       string     `json:"awayTeam"`
	HomeDifficulty int        `json:"homeDifficulty"`
	AwayDifficulty int        `json:"awayDifficulty"`
	HomeScore      *int       `json:"homeScore,omitempty"`
	AwayScore      *int       `json:"awayScore,omitempty"`
	KickoffAt      *time.Time `json:"kickoffAt,omitempty"`
	Started        bool       `json:"started"`
	Finished       bool       `json:"finished"`
}

type playerFixtureDTO struct {
	Gameweek   int        `json:"gameweek"`
	FixtureID  int        `json:"fixtureId"`
	Opponent   string     `json:"opponent"`
	OpponentID int        `json:"opponentId"`
	Difficulty int        `json:"difficulty"`
	IsHome     bool       `json:"isHome"`
	KickoffAt  *time.Time `json:"kickoffAt,omitempty"`
}

type playerDTO struct {
	ID                int            `json:"id"`
	FirstName         string         `json:"firstName"`
	SecondName        string         `json:"secondName"`
	WebName           string         `json:"webName"`
	TeamID            int            `json:"teamId"`
	TeamShortName     string         `json:"teamShortName"`
	TeamCode          int            `json:"teamCode"`
	Position          string         `json:"position"`
	Price             float64        `json:"price"`
	NowCost           int            `json:"nowCost"`
	Form              float64        `json:"form"`
	SelectedByPercent float64        `json:"selectedByPercent"`
	Status            string         `json:"status"`
	News              string         `json:"news,omitempty"`
	Stats             playerStatsDTO `json:"stats"`
}

type playerStatsDTO struct {
	TotalPoints   int    `json:"totalPoints"`
	EventPoints   int    `json:"eventPoints"`
	GoalsScored   int    `json:"goalsScored"`
	Assists       int    `json:"assists"`
	CleanSheets   int    `json:"cleanSheets"`
	Minutes       int    `json:"minutes"`
	Bonus         int    `json:"bonus"`
	YellowCards   int    `json:"yellowCards"`
	RedCards      int    `json:"redCards"`
	Saves         int    `json:"saves"`
	PointsPerGame string `json:"pointsPerGame"`
}

type playerFDRDTO struct {
	PlayerID   int     `json:"playerId"`
	AverageFDR float64 `json:"averageFdr"`
}

type playerLiveDTO struct {
	PlayerID int            `json:"playerId"`
	Stats    map[string]any `json:"stats"`
}

type liveStatsResultDTO struct {
	Changed bool   `json:"changed"`
	Version uint64 `json:"version"`
}

type rosterDTO struct {
	Picks     []rosterPickDTO `json:"picks"`
	Budget    float64         `json:"budget"`
	Spent     float64         `json:"spent"`
	BudgetCap float64         `json:"budgetCap"`
	SquadSize int             `json:"squadSize"`
}

type rosterPickDTO struct {
	PlayerID int     `json:"playerId"`
	TeamID   int     `json:"teamId"`
	Position string  `json:"position"`
	Price    float64 `json:"price"`
}

func teamToDTO(_ context.Context, v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Code:      v.Code,
		Name:      v.Name,
		ShortName: v.ShortName,
		Strength:  v.Strength,
	}
}

func gameweekToDTO(_ context.Context, v gameweek.Event) gameweekDTO {
	return gameweekDTO{
		ID:         v.ID,
		Name:       v.Name,
		DeadlineAt: timePtr(v.DeadlineAt),
		IsCurrent:  v.IsCurrent,
		IsNext:     v.IsNext,
		Finished:   v.Finished,
	}
}

func fixtureToDTO(_ context.Context, v fixture.Fixture, teamName func(int) string) fixtureDTO {
	return fixtureDTO{
		ID:             v.ID,
		Gameweek:       v.Gameweek,
		HomeTeamID:     v.HomeTeamID,
		HomeTeam:       teamName(v.HomeTeamID),
		AwayTeamID:     v.AwayTeamID,
		AwayTeam:       teamName(v.AwayTeamID),
		HomeDifficulty: v.HomeDifficulty,
		AwayDifficulty: v.AwayDifficulty,
		HomeScore:      v.HomeScore,
		AwayScore:      v.AwayScore,
		KickoffAt:      timePtr(v.KickoffAt),
		Started:        v.Started,
		Finished:       v.Finished,
	}
}

func playerFixturesToDTO(_ context.Context, items []fixture.PlayerFixture) []playerFixtureDTO {
	out := make([]playerFixtureDTO, 0, len(items))
	for _, v := range items {
		out = append(out, playerFixtureDTO{
			Gameweek:   v.Gameweek,
			FixtureID:  v.FixtureID,
			Opponent:   v.Opponent,
			OpponentID: v.OpponentID,
			Difficulty: v.Difficulty,
			IsHome:     v.IsHome,
			KickoffAt:  timePtr(v.KickoffAt),
		})
	}
	return out
}

func playerToDTO(_ context.Context, v player.Player) playerDTO {
	return playerDTO{
		ID:                v.ID,
		FirstName:         v.FirstName,
		SecondName:        v.SecondName,
		WebName:           v.WebName,
		TeamID:            v.TeamID,
		TeamShortName:     v.TeamShortName,
		TeamCode:          v.TeamCode,
		Position:          string(v.Position),
		Price:             tenthsToUnits(v.Price),
		NowCost:           v.Price,
		Form:              v.FormValue(),
		SelectedByPercent: v.SelectedByValue(),
		Status:            string(v.Status),
		News:              v.News,
		Stats: playerStatsDTO{
			TotalPoints:   v.Stats.TotalPoints,
			EventPoints:   v.Stats.EventPoints,
			GoalsScored:   v.Stats.GoalsScored,
			Assists:       v.Stats.Assists,
			CleanSheets:   v.Stats.CleanSheets,
			Minutes:       v.Stats.Minutes,
			Bonus:         v.Stats.Bonus,
			YellowCards:   v.Stats.YellowCards,
			RedCards:      v.Stats.RedCards,
			Saves:         v.Stats.Saves,
			PointsPerGame: v.Stats.PointsPerGame,
		},
	}
}

func rosterToDTO(_ context.Context, v usecase.RosterView) rosterDTO {
	picks := make([]rosterPickDTO, 0, len(v.Picks))
	for _, pick := range v.Picks {
		picks = append(picks, rosterPickToDTO(pick))
	}

	return rosterDTO{
		Picks:     picks,
		Budget:    tenthsToUnits(v.Budget),
		Spent:     tenthsToUnits(v.Spent),
		BudgetCap: tenthsToUnits(v.BudgetCap),
		SquadSize: v.SquadSize,
	}
}

func rosterPickToDTO(v fantasy.SquadPick) rosterPickDTO {
	return rosterPickDTO{
		PlayerID: v.PlayerID,
		TeamID:   v.TeamID,
		Position: string(v.Position),
		Price:    tenthsToUnits(v.Price),
	}
}

func tenthsToUnits(v int) float64 {
	return float64(v) / 10
}

func timePtr(v time.Time) *time.Time {
	if v.IsZero() {
		return nil
	}
	out := v.UTC()
	return &out
}
