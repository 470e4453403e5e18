package usecase

import (
	"fmt"

	"github.com/riskibarqy/fpl-insight/internal/domain/fantasy"
	"github.com/riskibarqy/fpl-insight/internal/domain/player"
)

// RosterView is a snapshot of the local roster.
type RosterView struct {
	Picks     []fantasy.SquadPick
	Budget    int
	Spent     int
	BudgetCap int
	SquadSize int
}

// AddPlayerToTeam adds p to the local roster. A full roster, insufficient
// budget or a duplicate pick make it a no-op that reports false.
func (s *Store) AddPlayerToTeam(p player.Player) bool {
	if err := s.TryAddPlayerToTeam(p); err != nil {
		s.logger.Debug("roster add skipped", "player_id", p.ID, "error", err)
		return false
	}
	return true
}

// TryAddPlayerToTeam is AddPlayerToTeam with the rejection reason.
func (s *Store) TryAddPlayerToTeam(p player.Player) error {
	s.mu.Lock()
	if err := s.roster.Add(fantasy.PickFromPlayer(p)); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("add player %d to roster: %w", p.ID, err)
	}
	change, listeners := s.commitLocked(ChangeRoster, []int{p.ID})
	s.mu.Unlock()

	notify(change, listeners)
	return nil
}

// RemovePlayerFromTeam drops the player and refunds the price. Unknown ids are
// a no-op.
func (s *Store) RemovePlayerFromTeam(playerID int) bool {
	s.mu.Lock()
	if _, ok := s.roster.Remove(playerID); !ok {
		s.mu.Unlock()
		return false
	}
	change, listeners := s.commitLocked(ChangeRoster, []int{playerID})
	s.mu.Unlock()

	notify(change, listeners)
	return true
}

func (s *Store) Roster() RosterView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := s.roster.Rules()
	return RosterView{
		Picks:     s.roster.Picks(),
		Budget:    s.roster.Budget(),
		Spent:     s.roster.Spent(),
		BudgetCap: rules.BudgetCap,
		SquadSize: rules.SquadSize,
	}
}
