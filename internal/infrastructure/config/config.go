package config

import "github.com/kelseyhightower/envconfig"

// Database holds Turso database configuration.
type Database struct {
	URL       string `envconfig:"TEMPO_DATABASE_URL" required:"true"`
	AuthToken string `envconfig:"TEMPO_AUTH_TOKEN" required:"true"`
}

// Telemetry holds OTLP metrics exporter configuration. Metrics are off
// unless an endpoint is set.
type Telemetry struct {
	Endpoint string `envconfig:"TEMPO_OTLP_ENDPOINT" default:""`
	Insecure bool   `envconfig:"TEMPO_OTLP_INSECURE" default:"true"`
}

// Server holds configuration for the web server.
type Server struct {
	Database      Database
	Telemetry     Telemetry
	Port          int    `envconfig:"PORT" default:"8080"`
	JWTSecret     string `envconfig:"TEMPO_JWT_SECRET" required:"true"`
	DefaultLocale string `envconfig:"TEMPO_DEFAULT_LOCALE" default:"en"`
}

// LoadServer loads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg.Database); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg.Telemetry); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
