package attck

import (
	"log/slog"

	"github.com/zero-day-ai/attck/dataset"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures an Attck client.
type Option func(*config)

// config holds construction-time configuration for the client.
type config struct {
	configPath     string
	graphDoc       string
	enrichmentDoc  string
	provider       dataset.Provider
	subTechniques  bool
	forceRefresh   bool
	logger         *slog.Logger
	tracer         trace.Tracer
	meter          metric.Meter
}

// WithConfig sets the path of the YAML configuration file holding document
// location overrides and cache settings. Options set directly take
// precedence over the file. Ignored when WithProvider is set.
func WithConfig(path string) Option {
	return func(c *config) {
		c.configPath = path
	}
}

// WithGraphDocumentPath overrides the graph-exchange document location
// (an http(s) URL or a local file path), bypassing the default location.
// Ignored when WithProvider is set.
func WithGraphDocumentPath(loc string) Option {
	return func(c *config) {
		c.graphDoc = loc
	}
}

// WithEnrichmentDocumentPath overrides the enrichment document location
// (an http(s) URL or a local file path). Ignored when WithProvider is set.
func WithEnrichmentDocumentPath(loc string) Option {
	return func(c *config) {
		c.enrichmentDoc = loc
	}
}

// WithProvider sets a custom dataset provider, replacing the default
// HTTP-and-cache provider entirely. Useful for tests and embedded data.
// WithConfig, WithGraphDocumentPath and WithEnrichmentDocumentPath only
// shape the default provider, so they have no effect alongside this
// option.
func WithProvider(p dataset.Provider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithSubTechniques expands technique granularity to include sub-technique
// nodes. Off by default.
func WithSubTechniques(enabled bool) Option {
	return func(c *config) {
		c.subTechniques = enabled
	}
}

// WithForceRefresh bypasses any document cache on the initial load.
func WithForceRefresh(force bool) Option {
	return func(c *config) {
		c.forceRefresh = force
	}
}

// WithLogger sets a custom logger for the client.
// If not provided, a default logger will be created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. Loads and reloads are recorded
// as spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter. The client records a load counter
// and a load-duration histogram.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		c.meter = meter
	}
}
