package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pulselabs/pulse-api/internal/infrastructure/config"
	"github.com/pulselabs/pulse-api/internal/infrastructure/http/middleware"
	"github.com/pulselabs/pulse-api/internal/infrastructure/metrics"
)

// Server hosts the public HTTP surface.
type Server struct {
	log        *slog.Logger
	cfg        config.AppConfig
	httpServer *http.Server
}

// NoteHandlers is the slice of the note adapter the router needs.
type NoteHandlers interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

// Options collects the collaborators the server routes traffic to.
type Options struct {
	Config        config.AppConfig
	Logger        *slog.Logger
	Metrics       *metrics.ServerMetrics
	HealthHandler http.HandlerFunc
	MetaHandler   http.HandlerFunc
	Notes         NoteHandlers
}

// New wires the router and middleware chain.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.HealthHandler == nil {
		return nil, errors.New("health handler is required")
	}
	if opts.Notes == nil {
		return nil, errors.New("note handler is required")
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Method(http.MethodGet, "/health", opts.HealthHandler)
	if opts.MetaHandler != nil {
		r.Method(http.MethodGet, "/", opts.MetaHandler)
	}
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Route("/api/v1/notes", func(r chi.Router) {
		r.Get("/", opts.Notes.List)
		r.Post("/", opts.Notes.Create)
		r.Get("/{noteID}", opts.Notes.Get)
	})

	srv := &http.Server{
		Addr:         opts.Config.HTTP.Address(),
		Handler:      r,
		ReadTimeout:  opts.Config.HTTP.ReadTimeout,
		WriteTimeout: opts.Config.HTTP.WriteTimeout,
		IdleTimeout:  opts.Config.HTTP.IdleTimeout,
	}

	return &Server{log: opts.Logger, cfg: opts.Config, httpServer: srv}, nil
}

// Run starts the server and blocks until the context is canceled or the
// listener fails. On cancellation it stops accepting new connections and
// drains in-flight requests within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server started", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("HTTP server shutdown incomplete", "error", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
