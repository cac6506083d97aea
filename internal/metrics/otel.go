package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	meterName      = "lol-match-coach"
	otlpPushPeriod = 15 * time.Second
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled        bool
	Port           string
	ServiceName    string
	ServiceVersion string
	OtlpEndpoint   string
	OtlpInsecure   bool
}

// Setup builds a meter provider that is always scraped through the returned
// Prometheus handler and optionally pushed to an OTLP collector.
// When cfg.Enabled is false it returns an in-memory Recorder and a nil handler.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled {
		return NewRecorder(), nil, noop, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = meterName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("prometheus exporter: %w", err)
	}
	readers := []sdkmetric.Reader{promReader}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("otlp exporter %s: %w", cfg.OtlpEndpoint, err)
		}
		readers = append(readers, otlpReader)
	}

	res, err := serviceResource(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("metrics resource: %w", err)
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, reader := range readers {
		opts = append(opts, sdkmetric.WithReader(reader))
	}
	provider := sdkmetric.NewMeterProvider(opts...)

	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, fmt.Errorf("metrics instruments: %w", err)
	}
	return newRecorder(inst), promHandler, provider.Shutdown, nil
}

func serviceResource(ctx context.Context, cfg TelemetryConfig) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(cfg.ServiceName)}
	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.ServiceVersion))
	}
	return resource.New(ctx, resource.WithAttributes(attrs...))
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpPushPeriod)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}), nil
}

type otelInstruments struct {
	httpRequests      metric.Int64Counter
	httpLatency       metric.Float64Histogram
	providerAttempts  metric.Int64Counter
	providerLatency   metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfter        metric.Float64Histogram
	analyses          metric.Int64Counter
	analysisLatency   metric.Float64Histogram
	narrativeOutcomes metric.Int64Counter
}

type counterSpec struct {
	dst  *metric.Int64Counter
	name string
	desc string
}

type histogramSpec struct {
	dst  *metric.Float64Histogram
	name string
	desc string
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterName)
	o := &otelInstruments{}

	counters := []counterSpec{
		{&o.httpRequests, "http_requests_total", "Inbound HTTP requests."},
		{&o.providerAttempts, "provider_attempts_total", "Calls to the game-data provider, by operation and result."},
		{&o.rateLimitHits, "provider_rate_limit_hits_total", "Provider responses that asked the client to slow down."},
		{&o.analyses, "analyses_total", "Finished match analyses, by outcome."},
		{&o.narrativeOutcomes, "narratives_total", "Narratives returned, by source (ai or fallback)."},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = inst
	}

	histograms := []histogramSpec{
		{&o.httpLatency, "http_request_duration_ms", "Inbound request latency."},
		{&o.providerLatency, "provider_duration_ms", "Latency of one provider attempt."},
		{&o.retryAfter, "provider_retry_after_ms", "Retry-After hints sent with rate-limit responses."},
		{&o.analysisLatency, "analysis_duration_ms", "End-to-end analysis latency."},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.desc))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", h.name, err)
		}
		*h.dst = inst
	}
	return o, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	set := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	ctx := context.Background()
	o.httpRequests.Add(ctx, 1, set)
	o.httpLatency.Record(ctx, millis(duration), set)
}

func (o *otelInstruments) recordProviderAttempt(provider, operation, result string, duration time.Duration) {
	if o == nil {
		return
	}
	ctx := context.Background()
	o.providerAttempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrProvider, provider),
		attribute.String(AttrOperation, operation),
		attribute.String(AttrResult, result),
	))
	o.providerLatency.Record(ctx, millis(duration), metric.WithAttributes(
		attribute.String(AttrProvider, provider),
		attribute.String(AttrOperation, operation),
	))
}

func (o *otelInstruments) recordRateLimit(provider, operation string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	ctx := context.Background()
	set := metric.WithAttributes(
		attribute.String(AttrProvider, provider),
		attribute.String(AttrOperation, operation),
	)
	o.rateLimitHits.Add(ctx, 1, set)
	if retryAfter > 0 {
		o.retryAfter.Record(ctx, millis(retryAfter), set)
	}
}

func (o *otelInstruments) recordAnalysis(outcome string, duration time.Duration) {
	if o == nil {
		return
	}
	ctx := context.Background()
	set := metric.WithAttributes(attribute.String(AttrOutcome, outcome))
	o.analyses.Add(ctx, 1, set)
	o.analysisLatency.Record(ctx, millis(duration), set)
}

func (o *otelInstruments) recordNarrative(source string) {
	if o == nil {
		return
	}
	o.narrativeOutcomes.Add(context.Background(), 1, metric.WithAttributes(attribute.String(AttrSource, source)))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
