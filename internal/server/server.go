// Package server exposes the dashboard JSON API. Handlers run assessments
// on demand through the collector and read history from the recorder.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"CoinSentry/internal/collector"
	"CoinSentry/internal/recorder"
)

// Server wires the HTTP API around the collector and recorder.
type Server struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Watchlist []string
}

// NewServer creates a new API server.
func NewServer(col *collector.Collector, rec recorder.Recorder, watchlist []string) *Server {
	return &Server{Collector: col, Recorder: rec, Watchlist: watchlist}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/coins", s.handleWatchlist)
		r.Get("/coins/{coinID}/assessment", s.handleAssessment)
		r.Get("/coins/{coinID}/history", s.handleHistory)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleWatchlist(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"coins": s.Watchlist})
}

func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	coinID := chi.URLParam(r, "coinID")
	if coinID == "" {
		writeError(w, http.StatusBadRequest, "coin id is required")
		return
	}

	a, err := s.Collector.Assess(coinID)
	if err != nil {
		log.Printf("[ERROR] assess %s: %v", coinID, err)
		writeError(w, http.StatusBadGateway, "assessment failed: upstream data unavailable")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	coinID := chi.URLParam(r, "coinID")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := s.Recorder.RecentAssessments(coinID, limit)
	if err != nil {
		log.Printf("[ERROR] history for %s: %v", coinID, err)
		writeError(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"coin_id": coinID, "assessments": records})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[INFO] %s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}
