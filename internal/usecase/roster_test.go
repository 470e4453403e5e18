package usecase_test

import (
	"errors"
	"testing"

	"github.com/riskibarqy/fpl-insight/internal/domain/fantasy"
	"github.com/riskibarqy/fpl-insight/internal/domain/player"
	"github.com/riskibarqy/fpl-insight/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

func TestStore_AddPlayerToTeam_EnforcesSquadAndBudget(t *testing.T) {
	store := newTestStore(t, memory.NewFetcher())

	cheap := func(id int) player.Player {
		return player.Player{ID: id, TeamID: 1, WebName: "p", Position: player.PositionDefender, Price: 40}
	}
	for id := 1; id <= 15; id++ {
		if !store.AddPlayerToTeam(cheap(id)) {
			t.Fatalf("add player %d failed", id)
		}
	}

	if store.AddPlayerToTeam(cheap(16)) {
		t.Fatalf("expected full roster to reject the sixteenth player")
	}
	view := store.Roster()
	if len(view.Picks) != 15 {
		t.Fatalf("unexpected roster size: %d", len(view.Picks))
	}
	if view.Spent != 600 || view.Budget != 400 {
		t.Fatalf("unexpected budget: spent=%d budget=%d", view.Spent, view.Budget)
	}

	if !store.RemovePlayerFromTeam(3) {
		t.Fatalf("expected removal to succeed")
	}
	if view := store.Roster(); view.Budget != 440 || len(view.Picks) != 14 {
		t.Fatalf("expected refund after removal: budget=%d size=%d", view.Budget, len(view.Picks))
	}

	expensive := player.Player{ID: 99, TeamID: 1, WebName: "x", Position: player.PositionForward, Price: 441}
	if store.AddPlayerToTeam(expensive) {
		t.Fatalf("expected insufficient budget to reject the player")
	}
	err := store.TryAddPlayerToTeam(expensive)
	if !errors.Is(err, fantasy.ErrExceededBudget) {
		t.Fatalf("expected ErrExceededBudget, got %v", err)
	}
	if view := store.Roster(); view.Budget != 440 || len(view.Picks) != 14 {
		t.Fatalf("rejected add must not change the roster: budget=%d size=%d", view.Budget, len(view.Picks))
	}
}

func TestStore_RemovePlayerFromTeam_UnknownIsNoop(t *testing.T) {
	store := newTestStore(t, memory.NewFetcher())
	var calls int
	store.Subscribe(func(usecase.Change) { calls++ })

	if store.RemovePlayerFromTeam(12345) {
		t.Fatalf("expected unknown removal to be a no-op")
	}
	if calls != 0 {
		t.Fatalf("unexpected notification for no-op removal")
	}
	if view := store.Roster(); view.Budget != view.BudgetCap || view.Spent != 0 {
		t.Fatalf("unexpected budget after no-op: %+v", view)
	}
}

func TestStore_AddPlayerToTeam_NotifiesRosterChange(t *testing.T) {
	store := newTestStore(t, memory.NewFetcher())
	var changes []usecase.Change
	store.Subscribe(func(change usecase.Change) { changes = append(changes, change) })

	p := player.Player{ID: 7, TeamID: 1, WebName: "p", Position: player.PositionMidfielder, Price: 55}
	store.AddPlayerToTeam(p)
	store.AddPlayerToTeam(p)

	if len(changes) != 1 {
		t.Fatalf("expected one roster notification, got %d", len(changes))
	}
	if changes[0].Kind != usecase.ChangeRoster || len(changes[0].PlayerIDs) != 1 || changes[0].PlayerIDs[0] != 7 {
		t.Fatalf("unexpected change: %+v", changes[0])
	}
}
