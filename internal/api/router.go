package api

import (
	"encoding/json"
	"net/http"

	"CreativeSentinel/internal/ingest"
	"CreativeSentinel/internal/recorder"
	"CreativeSentinel/internal/rollup"

	"github.com/go-chi/chi/v5"
)

// Server bundles the collaborators the HTTP handlers work against.
type Server struct {
	Analyzer *ingest.Analyzer
	Store    *rollup.Store
	Recorder recorder.Recorder
}

// NewRouter builds the HTTP API.
func NewRouter(s *Server) http.Handler {
	mux := chi.NewRouter()

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.Post("/api/fetch-report", s.handleFetchReport)
	mux.Post("/api/analyze", s.handleAnalyze)

	mux.Get("/api/dates", s.handleListDates)
	mux.Get("/api/snapshots/{date}", s.handleGetSnapshot)
	mux.Delete("/api/snapshots/{date}", s.handleDeleteSnapshot)
	mux.Patch("/api/snapshots/{date}/records/{creativeID}", s.handleEditRecord)

	mux.Get("/api/alltime", s.handleAllTime)
	mux.Get("/api/alltime/top", s.handleTopCreatives)
	mux.Get("/api/geo", s.handleGeoRollup)

	mux.Get("/api/creatives", s.handleListCreatives)
	mux.Get("/api/creatives/{creativeID}/history", s.handleHistory)

	mux.Get("/api/spend", s.handleGetSpendDraft)
	mux.Put("/api/spend", s.handlePutSpendDraft)

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
