// Package server exposes the journal over a small REST API. It is the
// process boundary the terminal UI talks to; all domain logic lives in
// the ledger, analytics, risk and advisor packages.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rustyeddy/axon/advisor"
	"github.com/rustyeddy/axon/config"
	"github.com/rustyeddy/axon/ledger"
	"github.com/rustyeddy/axon/logging"
)

// Server wraps the HTTP server and its collaborators.
type Server struct {
	store  *ledger.Store
	coach  *advisor.Coach
	cfg    *config.Config
	log    *logging.Logger
	server *http.Server
}

// New creates the REST API server. coach may be nil when no advisor key
// is configured; the advisor endpoint then answers with the fallback
// text.
func New(cfg *config.Config, store *ledger.Store, coach *advisor.Coach, log *logging.Logger) *Server {
	if log == nil {
		log = logging.NewSilent()
	}

	s := &Server{
		store: store,
		coach: coach,
		cfg:   cfg,
		log:   log,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.withMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("GET /api/trades", s.handleTradeList)
	mux.HandleFunc("POST /api/trades", s.handleTradeAdd)
	mux.HandleFunc("GET /api/trades/day/{day}", s.handleTradeDay)
	mux.HandleFunc("GET /api/trades/{id}", s.handleTradeGet)
	mux.HandleFunc("PUT /api/trades/{id}", s.handleTradeUpdate)
	mux.HandleFunc("DELETE /api/trades/{id}", s.handleTradeDelete)

	mux.HandleFunc("GET /api/analytics/summary", s.handleSummary)
	mux.HandleFunc("GET /api/analytics/equity", s.handleEquity)
	mux.HandleFunc("GET /api/analytics/equity.png", s.handleEquityChart)

	mux.HandleFunc("POST /api/size", s.handleSize)
	mux.HandleFunc("GET /api/instruments", s.handleInstruments)
	mux.HandleFunc("GET /api/rules", s.handleRules)
	mux.HandleFunc("POST /api/advisor", s.handleAdvisor)
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
