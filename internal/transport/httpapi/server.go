// Package httpapi is the chi HTTP surface of the discovery service.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/justthetip/yoto-discovery/internal/domain"
	"github.com/justthetip/yoto-discovery/internal/domain/chat"
	logpkg "github.com/justthetip/yoto-discovery/internal/logger"
	"github.com/justthetip/yoto-discovery/internal/metrics"
	discoveryuc "github.com/justthetip/yoto-discovery/internal/usecase/discovery"
	statsuc "github.com/justthetip/yoto-discovery/internal/usecase/stats"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server exposes the discovery pipeline over HTTP.
type Server struct {
	discovery     *discoveryuc.Service
	stats         statsuc.Summary
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates the HTTP API server. The stats summary is computed once
// at startup; the snapshot never changes within a process lifetime.
func NewServer(discovery *discoveryuc.Service, stats statsuc.Summary, logger *zap.Logger) *Server {
	s := &Server{
		discovery: discovery,
		stats:     stats,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, "empty_query"),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, "catalog_unavailable"),
		sentinelHandler(domain.ErrRankerUnavailable, http.StatusBadGateway, "ranker_unavailable"),
	}
	return s
}

// Routes assembles the router with the full middleware chain.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(metrics.Middleware())

	r.Post("/v1/discover", s.handleDiscover)
	r.Get("/v1/catalog/stats", s.handleStats)
	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// handleDiscover handles POST /v1/discover.
func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}

	turns := req.turns()
	res, err := s.discovery.Discover(r.Context(), turns)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	logpkg.FromContext(r.Context()).Debug("discover handled",
		zap.Int("candidates", len(res.Candidates)),
		zap.Int("rankings", len(res.Rankings)),
		zap.Bool("needs_more_info", res.NeedsMoreInfo),
	)
	writeJSON(w, http.StatusOK, discoverResponseFromResult(res, req.Limit))
}

// handleStats handles GET /v1/catalog/stats.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statsResponseFromSummary(s.stats))
}

// handleHealthz handles GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("unhandled domain error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type turnDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type discoverRequest struct {
	Query        string    `json:"query"`
	Conversation []turnDTO `json:"conversation,omitempty"`
	Limit        int       `json:"limit,omitempty"`
}

// turns builds the conversation: prior turns first, then the query as the
// latest user utterance when present.
func (r *discoverRequest) turns() []chat.Turn {
	turns := make([]chat.Turn, 0, len(r.Conversation)+1)
	for _, t := range r.Conversation {
		role := chat.RoleUser
		if t.Role == string(chat.RoleAssistant) {
			role = chat.RoleAssistant
		}
		turns = append(turns, chat.Turn{Role: role, Content: t.Content})
	}
	if r.Query != "" {
		turns = append(turns, chat.Turn{Role: chat.RoleUser, Content: r.Query})
	}
	return turns
}
