package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/fpl-insight/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insight/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-insight/internal/domain/player"
	"github.com/riskibarqy/fpl-insight/internal/domain/team"
)

// BootstrapData is the bulk season payload: every team, player and gameweek.
type BootstrapData struct {
	Teams   []team.Team
	Players []player.Player
	Events  []gameweek.Event
}

// LivePlayerUpdate is a partial set of live fields for one player.
type LivePlayerUpdate struct {
	ID    int
	Stats map[string]any
}

// RemoteFetcher loads raw data from the upstream statistics API.
// Implementations fail with errors marked ErrNetwork or ErrParse.
type RemoteFetcher interface {
	LoadBootstrap(ctx context.Context) (BootstrapData, error)
	LoadFixtures(ctx context.Context) ([]fixture.Fixture, error)
	LoadLiveGameweek(ctx context.Context, gameweek int) ([]LivePlayerUpdate, error)
}

// Cache is the subset of the TTL cache the store relies on.
type Cache interface {
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (any, error)) (any, bool, error)
	Delete(ctx context.Context, key string)
}
