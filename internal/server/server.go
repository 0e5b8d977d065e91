// Package server exposes the chat pipeline over HTTP: a streaming chat
// endpoint, session and history APIs, analytics, and a websocket channel.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/limitless-infotech/auralis/internal/auralis"
	"github.com/limitless-infotech/auralis/internal/enterprise"
	"github.com/limitless-infotech/auralis/internal/export"
	"github.com/limitless-infotech/auralis/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port        int
	AllowAll    bool          // allow all CORS origins (dev mode)
	StreamDelay time.Duration // pause between streamed words
}

// Server is the Auralis chat server.
type Server struct {
	cfg        Config
	pipeline   *auralis.Pipeline
	store      *store.Store
	interp     *enterprise.Interpreter
	exporter   *export.Exporter
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a chat server with all dependencies. store and interp may be
// nil; the corresponding endpoints then report service unavailable.
func New(cfg Config, pipeline *auralis.Pipeline, st *store.Store, interp *enterprise.Interpreter, logger *zap.Logger) *Server {
	if cfg.StreamDelay <= 0 {
		cfg.StreamDelay = 30 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	exporter, err := export.NewExporter()
	if err != nil {
		logger.Warn("transcript exporter unavailable", zap.Error(err))
	}
	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		store:    st,
		interp:   interp,
		exporter: exporter,
		logger:   logger,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Session-ID", "X-Auralis-Intent", "X-Auralis-Suggestions", "X-Auralis-Escalation"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Post("/chat/session", s.handleCreateSession)
		r.Get("/chat/welcome", s.handleWelcome)
		r.Get("/chat/history/{sessionID}", s.handleHistory)
		r.Get("/chat/history/{sessionID}/export", s.handleExport)
		r.Get("/analytics/chatbot", s.handleAnalytics)
		r.Post("/enterprise/command", s.handleEnterpriseCommand)
		r.Get("/enterprise/insights", s.handleInsights)
	})

	r.Get("/ws/chat", s.handleWebSocket)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("auralis server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
