package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/status", handler.GetStatus)
	mux.HandleFunc("POST /v1/refresh", handler.Refresh)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/fixtures", handler.ListTeamFixtures)
	mux.HandleFunc("GET /v1/gameweeks", handler.ListGameweeks)
	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/fixtures", handler.ListPlayerFixtures)
	mux.HandleFunc("GET /v1/players/{playerID}/fdr", handler.GetPlayerFDR)
	mux.HandleFunc("GET /v1/players/{playerID}/live", handler.GetPlayerLive)
	mux.HandleFunc("POST /v1/live-stats", handler.PushLiveStats)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/roster", handler.GetRoster)
	mux.HandleFunc("POST /v1/roster/players", handler.AddRosterPlayer)
	mux.HandleFunc("DELETE /v1/roster/players/{playerID}", handler.RemoveRosterPlayer)
}
