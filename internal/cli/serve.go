package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/tempo/internal/adapters/turso"
	"github.com/emiliopalmerini/tempo/internal/infrastructure/config"
	"github.com/emiliopalmerini/tempo/internal/migrate"
	"github.com/emiliopalmerini/tempo/internal/server"
	"github.com/emiliopalmerini/tempo/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web application",
	Long: `Start the tempo web server.

Configuration comes from the environment:
  TEMPO_DATABASE_URL    Turso database URL (required)
  TEMPO_AUTH_TOKEN      Turso auth token (required)
  TEMPO_JWT_SECRET      Session signing secret (required)
  TEMPO_OTLP_ENDPOINT   OTLP metrics endpoint (optional)
  PORT                  Listen port (default 8080)`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := turso.NewRemoteDB(cfg.Database.URL, cfg.Database.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := migrate.RunAll(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var metrics *telemetry.Metrics
	if cfg.Telemetry.Endpoint != "" {
		metrics, err = telemetry.New(ctx, telemetry.Config{
			Endpoint: cfg.Telemetry.Endpoint,
			Insecure: cfg.Telemetry.Insecure,
		})
		if err != nil {
			return fmt.Errorf("failed to set up telemetry: %w", err)
		}
		defer func() {
			if err := metrics.Close(context.Background()); err != nil {
				log.Error().Err(err).Msg("telemetry shutdown")
			}
		}()
	}

	srv := server.NewHTTPServer(server.Config{
		Port:          cfg.Port,
		JWTSecret:     []byte(cfg.JWTSecret),
		DefaultLocale: cfg.DefaultLocale,
	}, db, metrics)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(ctx, srv)
	})
	return g.Wait()
}
