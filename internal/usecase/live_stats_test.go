package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	usecasemock "github.com/riskibarqy/fpl-insight/internal/mocks/usecase"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

func loadedStore(t *testing.T) *usecase.Store {
	t.Helper()
	fetcher := usecasemock.NewRemoteFetcher(t)
	fetcher.On("LoadBootstrap", mock.Anything).Return(testBootstrap(), nil).Once()
	store := newTestStore(t, fetcher)
	store.FetchBootstrapData(context.Background())
	return store
}

func TestStore_UpdateLivePlayerStats_RepeatedPayloadNotifiesOnce(t *testing.T) {
	store := loadedStore(t)

	var changes []usecase.Change
	store.Subscribe(func(change usecase.Change) { changes = append(changes, change) })

	payload := []usecase.LivePlayerUpdate{
		{ID: 101, Stats: map[string]any{"minutes": 45, "goals_scored": 1}},
		{ID: 201, Stats: map[string]any{"minutes": 45, "bonus": 0}},
	}
	if !store.UpdateLivePlayerStats(payload) {
		t.Fatalf("expected first payload to change state")
	}
	for i := 0; i < 3; i++ {
		if store.UpdateLivePlayerStats(payload) {
			t.Fatalf("repeated payload %d reported a change", i)
		}
	}

	if len(changes) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(changes))
	}
	if changes[0].Kind != usecase.ChangeLiveStats {
		t.Fatalf("unexpected change kind: %s", changes[0].Kind)
	}
	if len(changes[0].PlayerIDs) != 2 || changes[0].PlayerIDs[0] != 101 || changes[0].PlayerIDs[1] != 201 {
		t.Fatalf("unexpected changed ids: %v", changes[0].PlayerIDs)
	}
}

func TestStore_UpdateLivePlayerStats_MergesAdditively(t *testing.T) {
	store := loadedStore(t)

	store.UpdateLivePlayerStats([]usecase.LivePlayerUpdate{
		{ID: 101, Stats: map[string]any{"minutes": 30, "goals_scored": 1}},
	})
	store.UpdateLivePlayerStats([]usecase.LivePlayerUpdate{
		{ID: 101, Stats: map[string]any{"minutes": 60, "assists": 1}},
	})

	got, ok := store.LivePlayerStats(101)
	if !ok {
		t.Fatalf("expected live stats for player 101")
	}
	want := map[string]any{"minutes": 60, "goals_scored": 1, "assists": 1}
	if len(got) != len(want) {
		t.Fatalf("unexpected merged fields: %v", got)
	}
	for key, value := range want {
		if got[key] != value {
			t.Fatalf("unexpected %s: got=%v want=%v", key, got[key], value)
		}
	}
}

func TestStore_UpdateLivePlayerStats_ComparesByValue(t *testing.T) {
	store := loadedStore(t)

	store.UpdateLivePlayerStats([]usecase.LivePlayerUpdate{
		{ID: 101, Stats: map[string]any{
			"minutes":   float64(90),
			"explain":   []any{map[string]any{"fixture": 10, "stats": []any{"goals"}}},
			"influence": "32.4",
		}},
	})

	// same values, different Go number types and fresh containers.
	same := []usecase.LivePlayerUpdate{
		{ID: 101, Stats: map[string]any{
			"minutes":   json.Number("90"),
			"explain":   []any{map[string]any{"fixture": int64(10), "stats": []any{"goals"}}},
			"influence": "32.4",
		}},
	}
	if store.UpdateLivePlayerStats(same) {
		t.Fatalf("structurally equal payload must not report a change")
	}

	different := []usecase.LivePlayerUpdate{
		{ID: 101, Stats: map[string]any{
			"explain": []any{map[string]any{"fixture": 10, "stats": []any{"goals", "bonus"}}},
		}},
	}
	if !store.UpdateLivePlayerStats(different) {
		t.Fatalf("nested change must be detected")
	}
}

func TestStore_UpdateLivePlayerStats_DoesNotTouchPlayers(t *testing.T) {
	store := loadedStore(t)
	before, _ := store.Player(101)

	stats := map[string]any{"total_points": 999, "minutes": 90}
	store.UpdateLivePlayerStats([]usecase.LivePlayerUpdate{{ID: 101, Stats: stats}})
	stats["minutes"] = 0

	after, _ := store.Player(101)
	if after != before {
		t.Fatalf("canonical player record changed: before=%+v after=%+v", before, after)
	}

	got, _ := store.LivePlayerStats(101)
	if got["minutes"] != 90 {
		t.Fatalf("live entry must not alias the caller's map, got minutes=%v", got["minutes"])
	}
	got["minutes"] = 1
	again, _ := store.LivePlayerStats(101)
	if again["minutes"] != 90 {
		t.Fatalf("LivePlayerStats must return a copy")
	}
}

func TestStore_UpdateLivePlayerStats_EmptyUpdates(t *testing.T) {
	store := loadedStore(t)
	version := store.Version()

	if store.UpdateLivePlayerStats(nil) {
		t.Fatalf("nil batch must not report a change")
	}
	if store.UpdateLivePlayerStats([]usecase.LivePlayerUpdate{{ID: 101}}) {
		t.Fatalf("empty stats on a new entry must not report a change")
	}
	if store.Version() != version {
		t.Fatalf("unexpected notification: version %d -> %d", version, store.Version())
	}
}

func TestStore_UpdateLivePlayerStats_BatchIsSingleNotification(t *testing.T) {
	store := loadedStore(t)
	var calls int
	store.Subscribe(func(usecase.Change) { calls++ })

	batch := make([]usecase.LivePlayerUpdate, 0, 50)
	for i := 0; i < 50; i++ {
		batch = append(batch, usecase.LivePlayerUpdate{ID: 1000 + i, Stats: map[string]any{"minutes": i}})
	}
	store.UpdateLivePlayerStats(batch)

	if calls != 1 {
		t.Fatalf("expected one notification for the batch, got %d", calls)
	}
}

func TestStore_FetchLiveStats(t *testing.T) {
	ctx := context.Background()
	fetcher := usecasemock.NewRemoteFetcher(t)
	fetcher.On("LoadBootstrap", mock.Anything).Return(testBootstrap(), nil).Once()
	fetcher.
		On("LoadLiveGameweek", mock.Anything, 2).
		Return([]usecase.LivePlayerUpdate{{ID: 201, Stats: map[string]any{"minutes": 90}}}, nil).
		Once()

	store := newTestStore(t, fetcher)
	store.FetchBootstrapData(ctx)

	changed, err := store.FetchLiveStats(ctx)
	if err != nil || !changed {
		t.Fatalf("expected first live fetch to change state: changed=%v err=%v", changed, err)
	}
	// served from the live cache entry and identical, so no change.
	changed, err = store.FetchLiveStats(ctx)
	if err != nil || changed {
		t.Fatalf("expected cached live fetch to be a no-op: changed=%v err=%v", changed, err)
	}
	fetcher.AssertNumberOfCalls(t, "LoadLiveGameweek", 1)
}

func TestStore_FetchLiveStats_ReturnsUpstreamError(t *testing.T) {
	fetcher := usecasemock.NewRemoteFetcher(t)
	fetcher.
		On("LoadLiveGameweek", mock.Anything, 1).
		Return(nil, fmt.Errorf("%w: timeout", usecase.ErrNetwork)).
		Once()

	store := newTestStore(t, fetcher)
	if _, err := store.FetchLiveStats(context.Background()); err == nil {
		t.Fatalf("expected live fetch error to surface")
	}
}
