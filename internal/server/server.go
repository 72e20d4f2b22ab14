// Package server exposes the flight risk core over HTTP. It is presentation
// plumbing only: every response is computed by the core packages.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/skyward-analytics/flightrisk/internal/assess"
	"github.com/skyward-analytics/flightrisk/internal/config"
	"github.com/skyward-analytics/flightrisk/internal/dataset"
	"github.com/skyward-analytics/flightrisk/internal/model"
)

// Server holds uploaded datasets in memory, keyed by upload ID. Each upload
// replaces nothing: callers address a dataset by ID, or by "latest" for the
// most recent one.
type Server struct {
	cfg     config.ServerConfig
	ingest  config.IngestConfig
	limiter *rate.Limiter

	mu       sync.RWMutex
	datasets map[string]*entry
	latest   string
}

type entry struct {
	ds          *model.Dataset
	summary     model.DatasetSummary
	assessments []model.FlightAssessment
}

// New creates a Server.
func New(cfg config.ServerConfig, ingest config.IngestConfig) *Server {
	return &Server{
		cfg:      cfg,
		ingest:   ingest,
		limiter:  rate.NewLimiter(rate.Limit(cfg.UploadRPS), cfg.UploadBurst),
		datasets: make(map[string]*entry),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// The upstream UI is a separate origin; mirror its permissive CORS.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/datasets", s.handleUpload)
		r.Route("/datasets/{datasetID}", func(r chi.Router) {
			r.Get("/summary", s.handleSummary)
			r.Get("/flights", s.handleFlights)
			r.Get("/flights/{flightID}", s.handleFlight)
		})
	})

	return r
}

// uploadResponse is the full result of ingesting one dataset, matching the
// original upload surface: a summary plus one assessment per row.
type uploadResponse struct {
	DatasetID   string                   `json:"dataset_id"`
	Summary     model.DatasetSummary     `json:"summary"`
	Assessments []model.FlightAssessment `json:"assessments"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow() {
		respondError(w, http.StatusTooManyRequests, "upload rate limit exceeded")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "read request body")
		return
	}

	ds, err := dataset.Parse(body, s.ingest)
	if err != nil {
		// Structural errors reject the upload; prior datasets are untouched.
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := uuid.NewString()
	e := &entry{
		ds:          ds,
		summary:     dataset.Summarize(ds),
		assessments: assess.All(ds),
	}

	s.mu.Lock()
	s.datasets[id] = e
	s.latest = id
	s.mu.Unlock()

	zap.L().Info("server: dataset uploaded",
		zap.String("dataset_id", id),
		zap.Int("rows", ds.Len()),
	)

	respondJSON(w, http.StatusCreated, uploadResponse{
		DatasetID:   id,
		Summary:     e.summary,
		Assessments: e.assessments,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "datasetID"))
	if !ok {
		respondError(w, http.StatusNotFound, "dataset not found")
		return
	}
	respondJSON(w, http.StatusOK, e.summary)
}

func (s *Server) handleFlights(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "datasetID"))
	if !ok {
		respondError(w, http.StatusNotFound, "dataset not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{
		"tails":  e.summary.Tails,
		"routes": e.summary.Routes,
	})
}

func (s *Server) handleFlight(w http.ResponseWriter, r *http.Request) {
	e, ok := s.lookup(chi.URLParam(r, "datasetID"))
	if !ok {
		respondError(w, http.StatusNotFound, "dataset not found")
		return
	}

	sel, found := dataset.SelectByTail(e.ds, chi.URLParam(r, "flightID"))
	if !found {
		respondError(w, http.StatusNotFound, "tail number not found")
		return
	}

	result := assess.Flight(sel.Record)
	result.FlightID = sel.FlightID
	result.RouteKey = sel.RouteKey
	respondJSON(w, http.StatusOK, result)
}

// lookup resolves a dataset ID, with "latest" addressing the most recent
// upload.
func (s *Server) lookup(id string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == "latest" {
		id = s.latest
	}
	e, ok := s.datasets[id]
	return e, ok
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
