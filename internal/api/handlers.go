package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"CreativeSentinel/internal/metrics"
	"CreativeSentinel/internal/model"
	"CreativeSentinel/internal/recorder"

	"github.com/go-chi/chi/v5"
)

// handleFetchReport proxies one report URL and returns its raw HTML. The
// caller decides what to do with it; no extraction happens here.
func (s *Server) handleFetchReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	html, err := s.Analyzer.Fetcher.FetchHTML(r.Context(), req.URL)
	if err != nil {
		log.Printf("[WARN] fetch report: %v", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"html": html})
}

// handleAnalyze runs the full pipeline for one pair of report URLs and
// upserts the resulting daily snapshot. Staged spend values are applied
// before the snapshot is finalized.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClicksURL      string `json:"clicksUrl"`
		ConversionsURL string `json:"conversionsUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ClicksURL == "" || req.ConversionsURL == "" {
		writeError(w, http.StatusBadRequest, "clicksUrl and conversionsUrl are required")
		return
	}

	res, err := s.Analyzer.Analyze(r.Context(), req.ClicksURL, req.ConversionsURL)
	if err != nil {
		log.Printf("[WARN] analyze: %v", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	// Apply the staged spend draft before the snapshot lands.
	draft := s.Store.SpendDraft()
	for i := range res.Records {
		if spend, ok := draft[res.Records[i].CreativeID]; ok {
			res.Records[i].Spend = spend
			metrics.Apply(&res.Records[i])
		}
	}

	if err := s.Store.Upsert(res.Date, res.Records); err != nil {
		log.Printf("[ERROR] upsert snapshot: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.Recorder.RecordIngest(&recorder.IngestEvent{
		Date:           res.Date,
		Records:        len(res.Records),
		ClicksURL:      req.ClicksURL,
		ConversionsURL: req.ConversionsURL,
		Source:         "api",
	}); err != nil {
		log.Printf("[WARN] record ingest event: %v", err)
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleListDates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.ListDates())
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	records, ok := s.Store.Snapshot(date)
	if !ok {
		writeError(w, http.StatusNotFound, "no snapshot for date")
		return
	}
	writeJSON(w, http.StatusOK, model.DailySnapshot{Date: date, Records: records})
}

func (s *Server) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	records, _ := s.Store.Snapshot(date)

	existed, err := s.Store.Delete(date)
	if err != nil {
		log.Printf("[ERROR] delete snapshot: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !existed {
		writeError(w, http.StatusNotFound, "no snapshot for date")
		return
	}
	if err := s.Recorder.RecordDelete(&recorder.DeleteEvent{Date: date, Records: len(records)}); err != nil {
		log.Printf("[WARN] record delete event: %v", err)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// handleEditRecord patches the raw counters of one record and recomputes its
// ratios. Unknown fields in the patch body are rejected.
func (s *Server) handleEditRecord(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	creativeID := chi.URLParam(r, "creativeID")

	var patch model.RecordPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid patch: "+err.Error())
		return
	}

	ok, err := s.Store.EditRecord(date, creativeID, patch)
	if err != nil {
		log.Printf("[ERROR] edit record: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "no such date or creative")
		return
	}

	records, _ := s.Store.Snapshot(date)
	for _, rec := range records {
		if rec.CreativeID != creativeID {
			continue
		}
		if err := s.Recorder.RecordEdit(&recorder.EditEvent{
			Date:          date,
			CreativeID:    creativeID,
			Spend:         rec.Spend,
			Installs:      rec.Installs,
			Registrations: rec.Registrations,
			Deposits:      rec.Deposits,
		}); err != nil {
			log.Printf("[WARN] record edit event: %v", err)
		}
		writeJSON(w, http.StatusOK, rec)
		return
	}
	writeError(w, http.StatusNotFound, "no such date or creative")
}

func (s *Server) handleAllTime(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.AllTime())
}

func (s *Server) handleTopCreatives(w http.ResponseWriter, r *http.Request) {
	by := r.URL.Query().Get("by")
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	writeJSON(w, http.StatusOK, s.Store.TopCreatives(by, limit))
}

func (s *Server) handleGeoRollup(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.GeoRollup())
}

func (s *Server) handleListCreatives(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.CreativeIDs())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	creativeID := chi.URLParam(r, "creativeID")
	writeJSON(w, http.StatusOK, s.Store.History(creativeID))
}

func (s *Server) handleGetSpendDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.SpendDraft())
}

func (s *Server) handlePutSpendDraft(w http.ResponseWriter, r *http.Request) {
	var draft map[string]float64
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid spend draft")
		return
	}
	if err := s.Store.SetSpendDraft(draft); err != nil {
		log.Printf("[ERROR] save spend draft: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": true})
}
