package attck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/zero-day-ai/attck/dataset"
	"github.com/zero-day-ai/attck/enrichment"
	"github.com/zero-day-ai/attck/entity"
	"github.com/zero-day-ai/attck/query"
	"github.com/zero-day-ai/attck/stix"
)

// Attck is the entry point to the knowledge base. It loads both source
// documents on construction and holds them as an immutable snapshot;
// Update replaces the whole snapshot atomically.
//
// The client is safe for concurrent readers. The entity views it returns
// memoize their relationships lazily and belong to the calling goroutine.
type Attck struct {
	logger   *slog.Logger
	tracer   trace.Tracer
	provider dataset.Provider

	subTechniques bool

	snap atomic.Pointer[snapshot]

	loads        metric.Int64Counter
	loadDuration metric.Float64Histogram
}

// snapshot is one loaded document generation. It is built completely
// before being swapped in, so readers never see a mixture of generations.
type snapshot struct {
	generation string
	graph      *entity.Graph
	quality    stix.QualityReport
	loadedAt   time.Time
}

// New builds a client and performs the initial load. It fails when either
// source document is unavailable or structurally invalid.
func New(opts ...Option) (*Attck, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	provider := cfg.provider
	if provider == nil {
		fileCfg, err := dataset.LoadConfig(cfg.configPath)
		if err != nil {
			return nil, NewConfigurationError("Attck.New", err)
		}
		if cfg.graphDoc != "" {
			fileCfg.GraphDocument = cfg.graphDoc
		}
		if cfg.enrichmentDoc != "" {
			fileCfg.EnrichmentDocument = cfg.enrichmentDoc
		}
		provider, err = fileCfg.Provider()
		if err != nil {
			return nil, NewConfigurationError("Attck.New", err)
		}
	}

	a := &Attck{
		logger:        cfg.logger,
		tracer:        cfg.tracer,
		provider:      provider,
		subTechniques: cfg.subTechniques,
	}

	if cfg.meter != nil {
		var err error
		a.loads, err = cfg.meter.Int64Counter("attck.loads",
			metric.WithDescription("Number of knowledge-base loads"))
		if err != nil {
			return nil, NewConfigurationError("Attck.New", err)
		}
		a.loadDuration, err = cfg.meter.Float64Histogram("attck.load.duration",
			metric.WithDescription("Knowledge-base load duration"),
			metric.WithUnit("s"))
		if err != nil {
			return nil, NewConfigurationError("Attck.New", err)
		}
	}

	if err := a.load(context.Background(), "Attck.New", cfg.forceRefresh); err != nil {
		return nil, err
	}
	return a, nil
}

// Update forces a full reload of both source documents, bypassing any
// cache. Readers in flight keep the generation they started with; new
// reads observe the replacement once the swap completes.
func (a *Attck) Update(ctx context.Context) error {
	return a.load(ctx, "Attck.Update", true)
}

// load builds a complete new snapshot off to the side and swaps it in with
// a single pointer store.
func (a *Attck) load(ctx context.Context, op string, force bool) error {
	ctx, span := a.startSpan(ctx, "attck.load")
	defer span.End()
	start := time.Now()

	bundle, err := a.provider.FetchGraphDocument(ctx, force, a.subTechniques)
	if err != nil {
		return classifyLoadError(op, err)
	}
	doc, err := a.provider.FetchEnrichmentDocument(ctx, force)
	if err != nil {
		return classifyLoadError(op, err)
	}

	index, err := stix.BuildIndex(bundle, a.logger)
	if err != nil {
		return NewSchemaError(op, errors.Join(ErrSchemaInvalid, err))
	}

	snap := &snapshot{
		generation: uuid.NewString(),
		graph:      entity.NewGraph(index, enrichment.NewJoiner(doc)),
		quality:    index.Quality(),
		loadedAt:   time.Now(),
	}
	a.snap.Store(snap)

	elapsed := time.Since(start)
	span.SetAttributes(
		attribute.String("attck.generation", snap.generation),
		attribute.Int("attck.objects", len(bundle.Objects)),
		attribute.Int("attck.quality_issues", len(snap.quality.Issues)),
	)
	if a.loads != nil {
		a.loads.Add(ctx, 1)
	}
	if a.loadDuration != nil {
		a.loadDuration.Record(ctx, elapsed.Seconds())
	}
	a.logger.Info("knowledge base loaded",
		"generation", snap.generation,
		"objects", len(bundle.Objects),
		"quality_issues", len(snap.quality.Issues),
		"duration", elapsed)
	return nil
}

func (a *Attck) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if a.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return a.tracer.Start(ctx, name)
}

// classifyLoadError separates schema problems from availability problems,
// attaching the matching sentinel so errors.Is works at the call site.
func classifyLoadError(op string, err error) *Error {
	switch {
	case errors.Is(err, stix.ErrNotBundle),
		errors.Is(err, stix.ErrNoObjects),
		errors.Is(err, enrichment.ErrNoTechniques):
		return NewSchemaError(op, errors.Join(ErrSchemaInvalid, err))
	default:
		return NewUnavailableError(op, errors.Join(ErrDataUnavailable, err))
	}
}

func (a *Attck) graph() *entity.Graph {
	return a.snap.Load().graph
}

// Tactics returns all tactics from the current document generation.
func (a *Attck) Tactics() []*entity.Tactic {
	return a.graph().Tactics()
}

// Techniques returns all techniques from the current document generation.
func (a *Attck) Techniques() []*entity.Technique {
	return a.graph().Techniques()
}

// Mitigations returns all mitigations from the current document generation.
func (a *Attck) Mitigations() []*entity.Mitigation {
	return a.graph().Mitigations()
}

// Actors returns all actors from the current document generation.
func (a *Attck) Actors() []*entity.Actor {
	return a.graph().Actors()
}

// Tools returns all tools from the current document generation.
func (a *Attck) Tools() []*entity.Tool {
	return a.graph().Tools()
}

// Malwares returns all malware entries from the current document generation.
func (a *Attck) Malwares() []*entity.Malware {
	return a.graph().Malwares()
}

// SearchCommands scans every technique's joined enrichment commands for
// the keyword, case-insensitively. Techniques without enrichment
// contribute nothing; no matches yields an empty result, not an error.
func (a *Attck) SearchCommands(keyword string) []entity.CommandMatch {
	var out []entity.CommandMatch
	for _, t := range a.Techniques() {
		out = append(out, t.SearchCommands(keyword)...)
	}
	return out
}

// TechniquesMatching returns the techniques whose attributes satisfy the
// CEL filter expression. See package query for the expression language.
func (a *Attck) TechniquesMatching(expr string) ([]*entity.Technique, error) {
	f, err := query.Compile(expr)
	if err != nil {
		return nil, NewQueryError("Attck.TechniquesMatching", err)
	}
	var out []*entity.Technique
	for _, t := range a.Techniques() {
		ok, err := f.Match(t.Attributes())
		if err != nil {
			return nil, NewQueryError("Attck.TechniquesMatching",
				fmt.Errorf("technique %s: %w", t.ID, err))
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// Generation returns the identifier of the current document generation.
// It changes on every successful load.
func (a *Attck) Generation() string {
	return a.snap.Load().generation
}

// LoadedAt returns when the current generation was loaded.
func (a *Attck) LoadedAt() time.Time {
	return a.snap.Load().loadedAt
}

// Quality returns the data-quality report for the current generation.
func (a *Attck) Quality() stix.QualityReport {
	return a.snap.Load().quality
}
