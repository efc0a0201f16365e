// Package server exposes the normalizer and resolver over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Vodeneev/oddsline/internal/pkg/apisports"
	"github.com/Vodeneev/oddsline/internal/pkg/config"
	"github.com/Vodeneev/oddsline/internal/pkg/enums"
	"github.com/Vodeneev/oddsline/internal/pkg/models"
	"github.com/Vodeneev/oddsline/internal/pkg/odds"
	"github.com/Vodeneev/oddsline/internal/pkg/payload"
	"github.com/Vodeneev/oddsline/internal/pkg/resolve"
)

// Provider fetches raw provider data. *apisports.Client implements it.
type Provider interface {
	FixturesByDate(ctx context.Context, league enums.League, date string, opts apisports.ListOptions) (*payload.Fixtures, error)
	FixturesRange(ctx context.Context, league enums.League, from, to string, opts apisports.ListOptions) (*payload.Fixtures, error)
	OddsForFixture(ctx context.Context, league enums.League, fixtureID int, opts apisports.OddsOptions) ([]byte, error)
	Injuries(ctx context.Context, league enums.League, opts apisports.InjuryOptions) ([]byte, error)
}

var _ Provider = (*apisports.Client)(nil)

// SnapshotReader reads stored odds snapshots. storage.PostgresSnapshotStorage implements it.
type SnapshotReader interface {
	GetSnapshots(ctx context.Context, league string, fixtureID int) ([]models.SnapshotRow, error)
}

type Server struct {
	provider   Provider
	normalizer *odds.Normalizer
	resolver   *resolve.Resolver
	snapshots  SnapshotReader
	cfg        config.ServerConfig
}

func New(provider Provider, normalizer *odds.Normalizer, resolver *resolve.Resolver, cfg config.ServerConfig) *Server {
	if cfg.MaxOddsLookups <= 0 {
		cfg.MaxOddsLookups = 200
	}
	return &Server{provider: provider, normalizer: normalizer, resolver: resolver, cfg: cfg}
}

// WithSnapshots enables /data/snapshots backed by store.
func (s *Server) WithSnapshots(store SnapshotReader) *Server {
	s.snapshots = store
	return s
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health endpoints
	r.Get("/ping", handlePing)
	r.Get("/health", handleHealth)

	r.Route("/data", func(r chi.Router) {
		r.Get("/leagues", s.handleLeagues)
		r.Get("/odds", s.handleOdds)
		r.Get("/resolve", s.handleResolve)
		r.Get("/history", s.handleHistory)
		r.Get("/injuries", s.handleInjuries)
		r.Get("/snapshots", s.handleSnapshots)
		r.Get("/markets/bet-id", s.handleBetID)

		r.Route("/debug", func(r chi.Router) {
			r.Get("/bookmakers", s.handleDebugBookmakers)
			r.Get("/markets", s.handleDebugMarkets)
		})
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("HTTP server listening", "addr", s.cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// handlePing handles /ping endpoint
func handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong\n"))
}

// handleHealth handles /health endpoint
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
