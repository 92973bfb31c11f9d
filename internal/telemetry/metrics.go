// Package telemetry exports application metrics to an OTLP collector.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "tempo"
	serviceVersion = "1.0.0"
)

// Config controls the OTLP exporter. An empty endpoint disables export.
type Config struct {
	Endpoint string
	Insecure bool
}

// Metrics records application-level counters. A nil *Metrics is a valid
// no-op recorder so callers never have to branch on telemetry being
// configured.
type Metrics struct {
	provider        *sdkmetric.MeterProvider
	requestsTotal   metric.Int64Counter
	entriesStarted  metric.Int64Counter
	entriesStopped  metric.Int64Counter
	entriesCombined metric.Int64Counter
	reportsExported metric.Int64Counter
}

// New sets up the OTLP meter provider and the application counters.
func New(ctx context.Context, cfg Config) (*Metrics, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("telemetry endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	m := &Metrics{provider: provider}

	if m.requestsTotal, err = meter.Int64Counter(
		"tempo_http_requests_total",
		metric.WithDescription("HTTP requests served"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating requests counter: %w", err)
	}

	if m.entriesStarted, err = meter.Int64Counter(
		"tempo_entries_started_total",
		metric.WithDescription("Timers started"),
		metric.WithUnit("{entry}"),
	); err != nil {
		return nil, fmt.Errorf("creating started counter: %w", err)
	}

	if m.entriesStopped, err = meter.Int64Counter(
		"tempo_entries_stopped_total",
		metric.WithDescription("Timers stopped"),
		metric.WithUnit("{entry}"),
	); err != nil {
		return nil, fmt.Errorf("creating stopped counter: %w", err)
	}

	if m.entriesCombined, err = meter.Int64Counter(
		"tempo_entries_combined_total",
		metric.WithDescription("Time entries absorbed by merges"),
		metric.WithUnit("{entry}"),
	); err != nil {
		return nil, fmt.Errorf("creating combined counter: %w", err)
	}

	if m.reportsExported, err = meter.Int64Counter(
		"tempo_reports_exported_total",
		metric.WithDescription("PDF reports exported"),
		metric.WithUnit("{report}"),
	); err != nil {
		return nil, fmt.Errorf("creating reports counter: %w", err)
	}

	return m, nil
}

func (m *Metrics) RecordRequest(ctx context.Context, method, route string, status int) {
	if m == nil {
		return
	}
	m.requestsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	))
}

func (m *Metrics) RecordEntryStarted(ctx context.Context, projectID string) {
	if m == nil {
		return
	}
	m.entriesStarted.Add(ctx, 1, metric.WithAttributes(attribute.String("project_id", projectID)))
}

func (m *Metrics) RecordEntryStopped(ctx context.Context) {
	if m == nil {
		return
	}
	m.entriesStopped.Add(ctx, 1)
}

func (m *Metrics) RecordEntriesCombined(ctx context.Context, absorbed int) {
	if m == nil {
		return
	}
	m.entriesCombined.Add(ctx, int64(absorbed))
}

func (m *Metrics) RecordReportExported(ctx context.Context, projectID string) {
	if m == nil {
		return
	}
	m.reportsExported.Add(ctx, 1, metric.WithAttributes(attribute.String("project_id", projectID)))
}

// Close flushes pending metrics and shuts the provider down.
func (m *Metrics) Close(ctx context.Context) error {
	if m == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}
