// Package server assembles the chi router and the HTTP server around it.
package server

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/emiliopalmerini/tempo/internal/accounts"
	"github.com/emiliopalmerini/tempo/internal/adapters/turso"
	"github.com/emiliopalmerini/tempo/internal/auth"
	"github.com/emiliopalmerini/tempo/internal/i18n"
	"github.com/emiliopalmerini/tempo/internal/projects"
	"github.com/emiliopalmerini/tempo/internal/reports"
	"github.com/emiliopalmerini/tempo/internal/settings"
	"github.com/emiliopalmerini/tempo/internal/telemetry"
	"github.com/emiliopalmerini/tempo/internal/timeentries"
)

//go:embed static/*
var staticFiles embed.FS

// Config holds server-specific configuration.
type Config struct {
	Port          int
	JWTSecret     []byte
	DefaultLocale string
}

// NewHTTPServer wires the repositories, middleware, and feature routes
// into an http.Server ready to listen. metrics may be nil when telemetry
// is not configured.
func NewHTTPServer(cfg Config, db *sql.DB, metrics *telemetry.Metrics) *http.Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(cfg.DefaultLocale))
	r.Use(auth.Middleware(cfg.JWTSecret))
	r.Use(metricsRecorder(metrics))

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	repos := turso.NewRepositories(db)

	accounts.RegisterRoutes(r, accounts.NewHandler(repos.Users, cfg.JWTSecret))

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser)
		projects.RegisterRoutes(r, projects.NewHandler(repos.Projects))
		timeentries.RegisterRoutes(r, timeentries.NewHandler(repos.TimeEntries, repos.Projects, metrics))
		reports.RegisterRoutes(r, reports.NewHandler(repos.TimeEntries, repos.Projects, metrics))
		settings.RegisterRoutes(r, settings.NewHandler())
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Start runs the server until ctx is cancelled, then shuts it down
// gracefully.
func Start(ctx context.Context, srv *http.Server) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}()

	log.Info().Str("addr", srv.Addr).Msg("starting server")

	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func metricsRecorder(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			metrics.RecordRequest(r.Context(), r.Method, route, ww.Status())
		})
	}
}
