package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zero-day-ai/attck/enrichment"
	"github.com/zero-day-ai/attck/stix"
)

// Default document locations.
const (
	// DefaultGraphDocumentURL is the public enterprise ATT&CK STIX bundle.
	DefaultGraphDocumentURL = "https://raw.githubusercontent.com/mitre/cti/master/enterprise-attack/enterprise-attack.json"

	// DefaultEnrichmentDocumentURL is the generated per-technique dataset.
	DefaultEnrichmentDocumentURL = "https://raw.githubusercontent.com/swimlane/pyattck/master/generated_attck_data.json"
)

// Cache keys for the two documents.
const (
	graphCacheKey      = "graph"
	enrichmentCacheKey = "enrichment"
)

// HTTPOptions configures an HTTPProvider.
type HTTPOptions struct {
	// GraphDocument is the bundle location: an http(s) URL or a local
	// file path. Default: DefaultGraphDocumentURL.
	GraphDocument string

	// EnrichmentDocument is the enrichment dataset location: an http(s)
	// URL or a local file path. Default: DefaultEnrichmentDocumentURL.
	EnrichmentDocument string

	// Client is the HTTP client for remote fetches. Default: a client
	// with a 60s timeout.
	Client *http.Client

	// Cache stores fetched bytes between loads. Nil disables caching.
	Cache Cache

	// Logger records fetch and cache activity. Default: slog.Default().
	Logger *slog.Logger
}

// HTTPProvider fetches documents over HTTP (or from local files) through an
// optional cache.
type HTTPProvider struct {
	graphLoc  string
	enrichLoc string
	client    *http.Client
	cache     Cache
	logger    *slog.Logger
}

// NewHTTPProvider builds a provider, filling in defaults for unset options.
func NewHTTPProvider(opts HTTPOptions) *HTTPProvider {
	if opts.GraphDocument == "" {
		opts.GraphDocument = DefaultGraphDocumentURL
	}
	if opts.EnrichmentDocument == "" {
		opts.EnrichmentDocument = DefaultEnrichmentDocumentURL
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 60 * time.Second}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &HTTPProvider{
		graphLoc:  opts.GraphDocument,
		enrichLoc: opts.EnrichmentDocument,
		client:    opts.Client,
		cache:     opts.Cache,
		logger:    opts.Logger,
	}
}

// FetchGraphDocument implements Provider.
func (p *HTTPProvider) FetchGraphDocument(ctx context.Context, force, includeSubTechniques bool) (*stix.Bundle, error) {
	raw, err := p.fetch(ctx, p.graphLoc, graphCacheKey, force)
	if err != nil {
		return nil, err
	}
	b, err := stix.DecodeBundle(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if !includeSubTechniques {
		b = StripSubTechniques(b)
	}
	return b, nil
}

// FetchEnrichmentDocument implements Provider.
func (p *HTTPProvider) FetchEnrichmentDocument(ctx context.Context, force bool) (*enrichment.Document, error) {
	raw, err := p.fetch(ctx, p.enrichLoc, enrichmentCacheKey, force)
	if err != nil {
		return nil, err
	}
	return enrichment.DecodeDocument(bytes.NewReader(raw))
}

// fetch returns the document bytes for loc, consulting the cache unless
// force is set and filling it after a source read.
func (p *HTTPProvider) fetch(ctx context.Context, loc, cacheKey string, force bool) ([]byte, error) {
	if !force && p.cache != nil {
		data, hit, err := p.cache.Get(ctx, cacheKey)
		if err != nil {
			// A broken cache should not take down a load that the
			// source can still serve.
			p.logger.Warn("document cache read failed, fetching from source",
				"key", cacheKey, "error", err)
		} else if hit {
			p.logger.Debug("document served from cache", "key", cacheKey)
			return data, nil
		}
	}

	data, err := p.read(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, loc, err)
	}
	p.logger.Info("document fetched from source", "location", loc, "bytes", len(data))

	if p.cache != nil {
		if err := p.cache.Set(ctx, cacheKey, data); err != nil {
			p.logger.Warn("document cache write failed", "key", cacheKey, "error", err)
		}
	}
	return data, nil
}

func (p *HTTPProvider) read(ctx context.Context, loc string) ([]byte, error) {
	if !isURL(loc) {
		return os.ReadFile(loc)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func isURL(loc string) bool {
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}
