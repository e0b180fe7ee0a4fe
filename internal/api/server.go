package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/JakeFAU/talenthub-backend/internal/config"
	"github.com/JakeFAU/talenthub-backend/internal/jobs"
	"github.com/JakeFAU/talenthub-backend/internal/telemetry"
)

// Banner is the body of GET /.
const Banner = "TalentHub Python Backend is running!"

// PostingLister supplies the postings served by GET /api/jobs.
type PostingLister interface {
	All() []jobs.Posting
}

// Server wires HTTP handlers to the job registry.
type Server struct {
	router      chi.Router
	jobsPayload []byte
	logger      *zap.Logger
}

// NewServer constructs a Server with middleware and routes. The postings are
// encoded once here; the registry never changes, so every GET /api/jobs
// returns the same bytes. metrics may be nil to disable instrumentation.
func NewServer(
	postings PostingLister,
	cfg config.Config,
	metrics *telemetry.Metrics,
	logger *zap.Logger,
) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	payload, err := json.Marshal(postings.All())
	if err != nil {
		return nil, fmt.Errorf("encode job postings: %w", err)
	}
	s := &Server{
		jobsPayload: payload,
		logger:      logger,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(recoverMiddleware(logger))
	if metrics != nil {
		r.Use(metrics.Middleware)
	}
	r.Use(corsMiddleware(cfg.CORS)...)
	r.Use(middleware.GetHead)

	r.Get("/", s.home)
	r.Get("/healthz", s.healthz)
	r.Get("/api/jobs", s.listJobs)
	if metrics != nil && cfg.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	s.router = r
	return s, nil
}

// Handler returns the Router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(Banner)); err != nil {
		s.logger.Warn("write banner failed", zap.Error(err))
	}
}

func (s *Server) listJobs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(s.jobsPayload); err != nil {
		s.logger.Warn("write job postings failed", zap.Error(err))
	}
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("write JSON failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	writeJSON(w, logger, status, map[string]string{"error": msg})
}
