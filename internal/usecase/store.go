package usecase

import (
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/fpl-insight/internal/domain/fantasy"
	"github.com/riskibarqy/fpl-insight/internal/domain/fixture"
	"github.com/riskibarqy/fpl-insight/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-insight/internal/domain/player"
	"github.com/riskibarqy/fpl-insight/internal/domain/team"
	"github.com/riskibarqy/fpl-insight/internal/platform/logging"
)

const (
	CacheKeyBootstrap = "bootstrap"
	CacheKeyFixtures  = "fixtures"
	cacheKeyLive      = "live:"

	defaultBootstrapTTL = 5 * time.Minute
	defaultFixturesTTL  = time.Minute
	defaultLiveTTL      = 30 * time.Second
)

// LoadStatus is the consumer-visible load state.
// Failed loads surface as StatusDegraded, never as an error.
type LoadStatus string

const (
	StatusIdle     LoadStatus = "idle"
	StatusLoading  LoadStatus = "loading"
	StatusReady    LoadStatus = "ready"
	StatusDegraded LoadStatus = "degraded"
)

// DataSource tells where the currently applied collection came from.
type DataSource string

const (
	SourceNone     DataSource = "none"
	SourceNetwork  DataSource = "network"
	SourceCache    DataSource = "cache"
	SourceFallback DataSource = "fallback"
)

type ChangeKind string

const (
	ChangeBootstrap ChangeKind = "bootstrap"
	ChangeFixtures  ChangeKind = "fixtures"
	ChangeLiveStats ChangeKind = "live_stats"
	ChangeRoster    ChangeKind = "roster"
)

// Change describes one state notification.
type Change struct {
	Kind      ChangeKind
	Version   uint64
	PlayerIDs []int
}

type Listener func(Change)

// FallbackDataset is the built-in reference data applied when the upstream fails.
type FallbackDataset struct {
	Bootstrap BootstrapData
	Fixtures  []fixture.Fixture
}

type StoreConfig struct {
	BootstrapTTL time.Duration
	FixturesTTL  time.Duration
	LiveTTL      time.Duration
	Rules        fantasy.Rules
	Fallback     FallbackDataset
	Logger       *logging.Logger
}

// State is a read-only view of the store's load flags. Error is never set by
// load operations; a failed load shows up as Degraded with fallback sources.
type State struct {
	Status          LoadStatus
	IsLoading       bool
	Error           error
	Degraded        bool
	DegradedReason  string
	BootstrapSource DataSource
	FixturesSource  DataSource
	CurrentGameweek int
	Version         uint64
}

type bootstrapSet struct {
	teams           []team.Team
	teamIndex       team.Index
	players         []player.Player
	playerIndex     map[int]int
	events          []gameweek.Event
	currentGameweek int
	rejected        int
}

type fixtureSet struct {
	items    []fixture.Fixture
	rejected int
}

// Store holds the normalized season data, the live-stats side table and the
// local roster. Build one per process with NewStore and inject it.
type Store struct {
	fetcher RemoteFetcher
	cache   Cache
	cfg     StoreConfig
	logger  *logging.Logger

	fallbackBootstrap *bootstrapSet
	fallbackFixtures  *fixtureSet

	mu              sync.RWMutex
	bootstrap       *bootstrapSet
	fixtures        *fixtureSet
	bootstrapSource DataSource
	fixturesSource  DataSource
	degradedReason  map[string]string
	inFlight        int
	liveStats       map[int]map[string]any
	roster          *fantasy.Roster
	version         uint64
	listeners       map[uint64]Listener
	nextListenerID  uint64
}

func NewStore(fetcher RemoteFetcher, cache Cache, cfg StoreConfig) *Store {
	if cfg.BootstrapTTL <= 0 {
		cfg.BootstrapTTL = defaultBootstrapTTL
	}
	if cfg.FixturesTTL <= 0 {
		cfg.FixturesTTL = defaultFixturesTTL
	}
	if cfg.LiveTTL <= 0 {
		cfg.LiveTTL = defaultLiveTTL
	}
	if cfg.Rules.SquadSize <= 0 {
		cfg.Rules = fantasy.DefaultRules()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Store{
		fetcher:           fetcher,
		cache:             cache,
		cfg:               cfg,
		logger:            logger.Named("store"),
		fallbackBootstrap: normalizeBootstrap(cfg.Fallback.Bootstrap),
		fallbackFixtures:  normalizeFixtures(cfg.Fallback.Fixtures),
		bootstrap:         normalizeBootstrap(BootstrapData{}),
		fixtures:          &fixtureSet{},
		bootstrapSource:   SourceNone,
		fixturesSource:    SourceNone,
		degradedReason:    make(map[string]string),
		liveStats:         make(map[int]map[string]any),
		roster:            fantasy.NewRoster(cfg.Rules),
		listeners:         make(map[uint64]Listener),
	}
}

// Subscribe registers listener for state changes. Listeners run synchronously
// on the goroutine that made the change, after the store lock is released.
func (s *Store) Subscribe(listener Listener) (unsubscribe func()) {
	if listener == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// commitLocked bumps the version and returns the change plus the listeners to
// call once the lock is released.
func (s *Store) commitLocked(kind ChangeKind, playerIDs []int) (Change, []Listener) {
	s.version++
	listeners := make([]Listener, 0, len(s.listeners))
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	return Change{Kind: kind, Version: s.version, PlayerIDs: playerIDs}, listeners
}

func notify(change Change, listeners []Listener) {
	for _, listener := range listeners {
		listener(change)
	}
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) Status() LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusLocked()
}

func (s *Store) statusLocked() LoadStatus {
	switch {
	case s.inFlight > 0:
		return StatusLoading
	case s.bootstrapSource == SourceNone && s.fixturesSource == SourceNone:
		return StatusIdle
	case len(s.degradedReason) > 0:
		return StatusDegraded
	default:
		return StatusReady
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reason := ""
	keys := make([]string, 0, len(s.degradedReason))
	for key := range s.degradedReason {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if reason != "" {
			reason += "; "
		}
		reason += key + ": " + s.degradedReason[key]
	}

	return State{
		Status:          s.statusLocked(),
		IsLoading:       s.inFlight > 0,
		Degraded:        len(s.degradedReason) > 0,
		DegradedReason:  reason,
		BootstrapSource: s.bootstrapSource,
		FixturesSource:  s.fixturesSource,
		CurrentGameweek: s.bootstrap.currentGameweek,
		Version:         s.version,
	}
}

// Players returns the loaded players. The slice is shared with the store and
// stays identical until the next successful bootstrap replaces it; do not modify it.
func (s *Store) Players() []player.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bootstrap.players
}

func (s *Store) Teams() []team.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bootstrap.teams
}

func (s *Store) Events() []gameweek.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bootstrap.events
}

func (s *Store) Fixtures() []fixture.Fixture {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fixtures.items
}

func (s *Store) CurrentGameweek() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bootstrap.currentGameweek
}

func (s *Store) NextGameweek() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gameweek.NextID(s.bootstrap.events)
}

func (s *Store) Player(id int) (player.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerLocked(id)
}

func (s *Store) playerLocked(id int) (player.Player, bool) {
	idx, ok := s.bootstrap.playerIndex[id]
	if !ok {
		return player.Player{}, false
	}
	return s.bootstrap.players[idx], true
}

type validatable interface {
	Validate() error
}

// keepValid copies the records that pass Validate and counts the rest.
func keepValid[T validatable](items []T) ([]T, int) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Validate() != nil {
			continue
		}
		out = append(out, item)
	}
	return out, len(items) - len(out)
}

// normalizeBootstrap drops records failing domain validation and denormalizes
// each player's team short name and code so later lookups do not need a join.
func normalizeBootstrap(data BootstrapData) *bootstrapSet {
	teams, rejectedTeams := keepValid(data.Teams)
	teamIndex := team.NewIndex(teams)

	valid, rejectedPlayers := keepValid(data.Players)
	players := make([]player.Player, len(valid))
	playerIndex := make(map[int]int, len(valid))
	for i, item := range valid {
		if owner, ok := teamIndex[item.TeamID]; ok {
			item.TeamShortName = owner.ShortName
			item.TeamCode = owner.Code
		}
		players[i] = item
		playerIndex[item.ID] = i
	}

	events, rejectedEvents := keepValid(data.Events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].ID < events[j].ID })

	return &bootstrapSet{
		teams:           teams,
		teamIndex:       teamIndex,
		players:         players,
		playerIndex:     playerIndex,
		events:          events,
		currentGameweek: gameweek.CurrentID(events),
		rejected:        rejectedTeams + rejectedPlayers + rejectedEvents,
	}
}

// normalizeFixtures drops invalid fixtures and orders the rest by gameweek,
// kickoff and id.
func normalizeFixtures(items []fixture.Fixture) *fixtureSet {
	out, rejected := keepValid(items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Gameweek != out[j].Gameweek {
			return out[i].Gameweek < out[j].Gameweek
		}
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	return &fixtureSet{items: out, rejected: rejected}
}
