package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fpl-insight/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

// Fallback returns the built-in reference dataset the store applies when the
// upstream cannot be reached.
func Fallback() usecase.FallbackDataset {
	return usecase.FallbackDataset{
		Bootstrap: SeedBootstrap(),
		Fixtures:  SeedFixtures(),
	}
}

func SeedBootstrap() usecase.BootstrapData {
	return usecase.BootstrapData{
		Teams:   SeedTeams(),
		Players: SeedPlayers(),
		Events:  SeedEvents(),
	}
}

// Fetcher serves the seed dataset in place of the upstream API, for offline
// runs. Live updates are whatever was last handed to SetLive.
type Fetcher struct {
	mu   sync.RWMutex
	live map[int][]usecase.LivePlayerUpdate
}

func NewFetcher() *Fetcher {
	return &Fetcher{live: make(map[int][]usecase.LivePlayerUpdate)}
}

func (f *Fetcher) LoadBootstrap(_ context.Context) (usecase.BootstrapData, error) {
	return SeedBootstrap(), nil
}

func (f *Fetcher) LoadFixtures(_ context.Context) ([]fixture.Fixture, error) {
	return SeedFixtures(), nil
}

func (f *Fetcher) LoadLiveGameweek(_ context.Context, gameweek int) ([]usecase.LivePlayerUpdate, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	items := f.live[gameweek]
	out := make([]usecase.LivePlayerUpdate, 0, len(items))
	out = append(out, items...)
	return out, nil
}

func (f *Fetcher) SetLive(gameweek int, updates []usecase.LivePlayerUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.live[gameweek] = append([]usecase.LivePlayerUpdate(nil), updates...)
}
