package dataset

import (
	"context"
	"errors"

	"github.com/zero-day-ai/attck/enrichment"
	"github.com/zero-day-ai/attck/stix"
)

// ErrUnavailable is returned when neither the cache nor the source location
// can produce a document. Fatal at load time.
var ErrUnavailable = errors.New("dataset: document unavailable")

// Provider supplies parsed source documents. Implementations own all I/O:
// once the documents are handed over, the core never performs I/O again
// until the next load.
type Provider interface {
	// FetchGraphDocument returns the graph-exchange bundle. When force is
	// true any cache is bypassed. When includeSubTechniques is false the
	// returned bundle contains no sub-technique nodes and no edges that
	// reference them.
	FetchGraphDocument(ctx context.Context, force, includeSubTechniques bool) (*stix.Bundle, error)

	// FetchEnrichmentDocument returns the per-technique enrichment
	// dataset. When force is true any cache is bypassed.
	FetchEnrichmentDocument(ctx context.Context, force bool) (*enrichment.Document, error)
}

// StripSubTechniques returns a copy of the bundle without sub-technique
// objects, without "subtechnique-of" relationships, and without any
// relationship whose endpoint was removed.
func StripSubTechniques(b *stix.Bundle) *stix.Bundle {
	removed := make(map[string]bool)
	for i := range b.Objects {
		o := &b.Objects[i]
		if o.Type == stix.TypeTechnique && o.SubTechnique {
			removed[o.ID] = true
		}
	}

	out := &stix.Bundle{
		Type:        b.Type,
		ID:          b.ID,
		SpecVersion: b.SpecVersion,
		Objects:     make([]stix.Object, 0, len(b.Objects)),
	}
	for i := range b.Objects {
		o := &b.Objects[i]
		switch {
		case removed[o.ID]:
			continue
		case o.Type == stix.TypeRelationship:
			if o.RelationshipType == "subtechnique-of" ||
				removed[o.SourceRef] || removed[o.TargetRef] {
				continue
			}
		}
		out.Objects = append(out.Objects, *o)
	}
	return out
}
