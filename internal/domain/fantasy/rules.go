package fantasy

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/fpl-insight/internal/domain/player"
)

var (
	ErrSquadFull              = errors.New("squad is full")
	ErrExceededBudget         = errors.New("budget cap exceeded")
	ErrUnknownPlayerPosition  = errors.New("unknown player position")
	ErrDuplicatePlayerInSquad = errors.New("duplicate player in squad")
	ErrInvalidPrice           = errors.New("invalid player price")
)

// Rules stores roster limits. Money is counted in tenths of the currency unit.
type Rules struct {
	SquadSize int
	BudgetCap int
}

func DefaultRules() Rules {
	return Rules{
		SquadSize: 15,
		BudgetCap: 1000,
	}
}

// Roster is a locally selected squad with a running budget.
// The zero value is unusable; build one with NewRoster.
type Roster struct {
	rules  Rules
	picks  []SquadPick
	budget int
}

func NewRoster(rules Rules) *Roster {
	if rules.SquadSize <= 0 {
		rules.SquadSize = DefaultRules().SquadSize
	}
	if rules.BudgetCap < 0 {
		rules.BudgetCap = 0
	}
	return &Roster{
		rules:  rules,
		picks:  make([]SquadPick, 0, rules.SquadSize),
		budget: rules.BudgetCap,
	}
}

// Add appends pick when a slot and enough budget remain.
// On error the roster is left untouched.
func (r *Roster) Add(pick SquadPick) error {
	if _, ok := player.AllPositions[pick.Position]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayerPosition, pick.Position)
	}
	if pick.Price <= 0 {
		return fmt.Errorf("%w: player=%d price=%d", ErrInvalidPrice, pick.PlayerID, pick.Price)
	}
	if r.Has(pick.PlayerID) {
		return fmt.Errorf("%w: %d", ErrDuplicatePlayerInSquad, pick.PlayerID)
	}
	if len(r.picks) >= r.rules.SquadSize {
		return fmt.Errorf("%w: max=%d", ErrSquadFull, r.rules.SquadSize)
	}
	if pick.Price > r.budget {
		return fmt.Errorf("%w: remaining=%d price=%d", ErrExceededBudget, r.budget, pick.Price)
	}

	r.picks = append(r.picks, pick)
	r.budget -= pick.Price
	return nil
}

// Remove drops the pick for playerID and refunds its price.
func (r *Roster) Remove(playerID int) (SquadPick, bool) {
	for idx, pick := range r.picks {
		if pick.PlayerID != playerID {
			continue
		}
		r.picks = append(r.picks[:idx], r.picks[idx+1:]...)
		r.budget += pick.Price
		return pick, true
	}
	return SquadPick{}, false
}

func (r *Roster) Has(playerID int) bool {
	for _, pick := range r.picks {
		if pick.PlayerID == playerID {
			return true
		}
	}
	return false
}

// Picks returns a copy of the current selection in insertion order.
func (r *Roster) Picks() []SquadPick {
	out := make([]SquadPick, len(r.picks))
	copy(out, r.picks)
	return out
}

func (r *Roster) Budget() int {
	return r.budget
}

func (r *Roster) Spent() int {
	return r.rules.BudgetCap - r.budget
}

func (r *Roster) Rules() Rules {
	return r.rules
}
