package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerSummonerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/summoners", handler.RefreshSummoner)
	mux.HandleFunc("GET /v1/summoners/{puuid}", handler.GetSummoner)
	mux.HandleFunc("GET /v1/summoners/{puuid}/ranked", handler.ListRankedEntries)
	mux.HandleFunc("GET /v1/summoners/{puuid}/matches", handler.ListRecentMatches)
	mux.HandleFunc("POST /v1/summoners/{puuid}/matches/ingest", handler.IngestRecentMatches)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("POST /v1/matches/{matchID}/ingest", handler.IngestMatch)
}
