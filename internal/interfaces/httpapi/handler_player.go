package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/fpl-insight/internal/domain/player"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

// ListPlayers serves both the fuzzy search (search=) and the ranked listing
// (sort=, position=).
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := r.URL.Query()
	limit, err := parseBoundedQueryInt(r, "limit", defaultPlayerLimit, maxPlayerLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var position player.Position
	if raw := strings.TrimSpace(query.Get("position")); raw != "" {
		pos, ok := player.ParsePosition(raw)
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: unknown position %q", usecase.ErrInvalidInput, raw))
			return
		}
		position = pos
	}

	sortBy, ok := usecase.ParsePlayerSort(query.Get("sort"))
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown sort %q", usecase.ErrInvalidInput, query.Get("sort")))
		return
	}

	var players []player.Player
	if search := strings.TrimSpace(query.Get("search")); search != "" {
		players = h.store.SearchPlayers(search, maxPlayerLimit)
		players = filterByPosition(players, position, limit)
	} else {
		players = h.store.TopPlayers(sortBy, position, limit)
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer", routeAttrs(r)...)
	defer span.End()

	playerID, err := parsePathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, ok := h.store.Player(playerID)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: player %d", usecase.ErrNotFound, playerID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

// ListPlayerFixtures returns an empty list for unknown players, matching the
// store's derived views.
func (h *Handler) ListPlayerFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerFixtures", routeAttrs(r)...)
	defer span.End()

	playerID, err := parsePathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	count, err := parseBoundedQueryInt(r, "count", defaultFixtureCount, maxFixtureCount)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerFixturesToDTO(ctx, h.store.GetPlayerFixtures(playerID, count)))
}

func (h *Handler) GetPlayerFDR(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerFDR", routeAttrs(r)...)
	defer span.End()

	playerID, err := parsePathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerFDRDTO{
		PlayerID:   playerID,
		AverageFDR: h.store.GetAverageFDR(playerID),
	})
}

func (h *Handler) GetPlayerLive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerLive", routeAttrs(r)...)
	defer span.End()

	playerID, err := parsePathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, ok := h.store.LivePlayerStats(playerID)
	if !ok {
		stats = map[string]any{}
	}

	writeSuccess(ctx, w, http.StatusOK, playerLiveDTO{
		PlayerID: playerID,
		Stats:    stats,
	})
}

func filterByPosition(players []player.Player, position player.Position, limit int) []player.Player {
	out := make([]player.Player, 0, min(limit, len(players)))
	for _, p := range players {
		if len(out) == limit {
			break
		}
		if position != "" && p.Position != position {
			continue
		}
		out = append(out, p)
	}
	return out
}
