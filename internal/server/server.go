// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/analysis"
	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/store"
)

// =============================================================================
// SERVER
// =============================================================================

// Config holds the listener address and rate-limit shape.
type Config struct {
	Host      string
	Port      int
	RateRPS   float64
	RateBurst int
}

// Stats tracks request counters for /api/health.
type Stats struct {
	Requests  atomic.Int64
	StartTime time.Time
}

// Server serves the JSON API over the most recent analysis. The report
// is swapped atomically under a RWMutex; handlers snapshot it under the
// read lock so a reload never tears a response.
type Server struct {
	cfg     Config
	history *store.Store

	mu       sync.RWMutex
	report   *analysis.Report
	source   string
	loadedAt time.Time

	stats Stats
}

// New builds a server. history may be nil when run without persistence.
func New(cfg Config, history *store.Store) *Server {
	return &Server{
		cfg:     cfg,
		history: history,
		stats:   Stats{StartTime: time.Now()},
	}
}

// SetReport swaps the report the API serves.
func (s *Server) SetReport(report *analysis.Report, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = report
	s.source = source
	s.loadedAt = time.Now()
}

// snapshot returns the current report under the read lock.
func (s *Server) snapshot() (*analysis.Report, string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report, s.source, s.loadedAt
}

// Handler builds the routed, middleware-wrapped handler. Exposed so
// tests can drive it through httptest without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/comparisons", s.handleComparisons)
	mux.HandleFunc("GET /api/modes", s.handleModes)
	mux.HandleFunc("GET /api/tree", s.handleTree)
	mux.HandleFunc("GET /api/tree/{path...}", s.handleTree)
	mux.HandleFunc("GET /api/runs", s.handleRuns)

	limiter := NewRateLimiter(s.cfg.RateRPS, s.cfg.RateBurst)
	return Chain(mux,
		Recovery,
		Logging,
		SecurityHeaders,
		CORS,
		limiter.Middleware,
		s.countRequests,
	)
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.stats.Requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

// Start listens until the context is canceled, then shuts down
// gracefully with a short drain window.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("SERVER | listening | addr=%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		log.Printf("SERVER | stopped | addr=%s", addr)
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("server listen: %w", err)
	}
}

// =============================================================================
// HANDLERS
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report, _, _ := s.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"uptime":        time.Since(s.stats.StartTime).String(),
		"requests":      s.stats.Requests.Load(),
		"report_loaded": report != nil,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	report, source, loadedAt := s.snapshot()
	if report == nil {
		writeError(w, http.StatusServiceUnavailable, "no report loaded")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"source":           source,
		"loaded_at":        loadedAt,
		"record_count":     report.Diagnostics.RecordCount,
		"parsed_count":     report.Diagnostics.ParsedCount,
		"comparison_count": len(report.Comparisons),
		"modes":            report.Modes(),
		"diagnostics":      report.Diagnostics,
	})
}

func (s *Server) handleComparisons(w http.ResponseWriter, r *http.Request) {
	report, _, _ := s.snapshot()
	if report == nil {
		writeError(w, http.StatusServiceUnavailable, "no report loaded")
		return
	}
	comps := report.Comparisons
	if mode := r.URL.Query().Get("mode"); mode != "" {
		comps = analysis.FilterByMode(comps, mode)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":       len(comps),
		"comparisons": comps,
	})
}

func (s *Server) handleModes(w http.ResponseWriter, r *http.Request) {
	report, _, _ := s.snapshot()
	if report == nil {
		writeError(w, http.StatusServiceUnavailable, "no report loaded")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"modes": report.Modes()})
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	report, _, _ := s.snapshot()
	if report == nil {
		writeError(w, http.StatusServiceUnavailable, "no report loaded")
		return
	}
	node := analysis.FindNode(report.Tree, r.PathValue("path"))
	if node == nil {
		writeError(w, http.StatusNotFound, "no such tree node")
		return
	}
	writeJSON(w, http.StatusOK, node)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusOK, map[string]any{"runs": []store.Run{}})
		return
	}
	runs, err := s.history.ListRuns(0)
	if err != nil {
		log.Printf("SERVER | list runs failed | %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("SERVER | encode response failed | %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
