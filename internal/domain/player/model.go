package player

import (
	"fmt"
	"strconv"
	"strings"
)

// Position represents football position categories used in fantasy rules.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// PositionFromElementType maps the upstream element_type (1..4) to a Position.
func PositionFromElementType(elementType int) (Position, bool) {
	switch elementType {
	case 1:
		return PositionGoalkeeper, true
	case 2:
		return PositionDefender, true
	case 3:
		return PositionMidfielder, true
	case 4:
		return PositionForward, true
	default:
		return "", false
	}
}

func ParsePosition(raw string) (Position, bool) {
	pos := Position(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := AllPositions[pos]
	return pos, ok
}

// Status is the availability flag for a player.
type Status string

const (
	StatusAvailable   Status = "a"
	StatusDoubtful    Status = "d"
	StatusInjured     Status = "i"
	StatusSuspended   Status = "s"
	StatusUnavailable Status = "u"
	StatusNotInSquad  Status = "n"
)

func NormalizeStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusDoubtful:
		return StatusDoubtful
	case StatusInjured:
		return StatusInjured
	case StatusSuspended:
		return StatusSuspended
	case StatusUnavailable:
		return StatusUnavailable
	case StatusNotInSquad:
		return StatusNotInSquad
	default:
		return StatusAvailable
	}
}

// SeasonStats holds cumulative season totals.
type SeasonStats struct {
	TotalPoints   int
	GoalsScored   int
	Assists       int
	CleanSheets   int
	Minutes       int
	Bonus         int
	YellowCards   int
	RedCards      int
	Saves         int
	EventPoints   int
	PointsPerGame string
}

// Player is a selectable athlete. Records are treated as immutable once loaded;
// live figures live in a separate side table keyed by ID.
type Player struct {
	ID                int
	FirstName         string
	SecondName        string
	WebName           string
	TeamID            int
	TeamShortName     string
	TeamCode          int
	Position          Position
	Price             int
	Stats             SeasonStats
	SelectedByPercent string
	Form              string
	Status            Status
	News              string
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.SecondName)
}

// FormValue parses Form, returning 0 for blank or malformed values.
func (p Player) FormValue() float64 {
	return parseDecimal(p.Form)
}

func (p Player) SelectedByValue() float64 {
	return parseDecimal(p.SelectedByPercent)
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}
	if p.WebName == "" {
		return fmt.Errorf("player web name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Price <= 0 {
		return fmt.Errorf("player price must be greater than zero")
	}

	return nil
}

func parseDecimal(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}
