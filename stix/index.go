package stix

import (
	"log/slog"
)

// QualityIssue records one data-quality problem found while indexing.
// Issues are warnings: the index is still usable and traversal tolerates
// the underlying gaps.
type QualityIssue struct {
	// Kind is the issue category: "duplicate_id" or "dangling_edge".
	Kind string

	// ObjectID is the object or edge endpoint the issue concerns.
	ObjectID string

	// Detail is a human-readable description.
	Detail string
}

// QualityReport collects the data-quality issues found in one document
// generation.
type QualityReport struct {
	Issues []QualityIssue
}

// Empty returns true when no issues were recorded.
func (r QualityReport) Empty() bool {
	return len(r.Issues) == 0
}

// Index provides classified access to one decoded bundle: objects bucketed
// by declared type, object lookup by id, and relationship lookup by
// endpoint. An Index is immutable once built and safe for concurrent
// readers.
type Index struct {
	byID     map[string]*Object
	byType   map[ObjectType][]*Object
	touching map[string][]*Relationship
	edges    []*Relationship
	report   QualityReport
}

// BuildIndex classifies the bundle's objects and builds the id and edge
// lookup tables. A nil logger defaults to slog.Default().
//
// Duplicate ids resolve last-write-wins and dangling edge endpoints are
// kept; both are logged as warnings and recorded in the quality report
// rather than failing the build. Bundle-level schema problems are caught
// earlier, in DecodeBundle.
func BuildIndex(b *Bundle, logger *slog.Logger) (*Index, error) {
	if b == nil || b.Objects == nil {
		return nil, ErrNoObjects
	}
	if logger == nil {
		logger = slog.Default()
	}

	idx := &Index{
		byID:     make(map[string]*Object, len(b.Objects)),
		byType:   make(map[ObjectType][]*Object),
		touching: make(map[string][]*Relationship),
	}

	// First pass: resolve object identity. Later occurrences of a
	// duplicated id win.
	for i := range b.Objects {
		o := &b.Objects[i]
		if o.Type == TypeRelationship || o.ID == "" {
			continue
		}
		if _, dup := idx.byID[o.ID]; dup {
			logger.Warn("duplicate object id in bundle, keeping last occurrence",
				"id", o.ID, "type", o.Type.String())
			idx.report.Issues = append(idx.report.Issues, QualityIssue{
				Kind:     "duplicate_id",
				ObjectID: o.ID,
				Detail:   "object id appears more than once; last occurrence kept",
			})
		}
		idx.byID[o.ID] = o
	}

	// Second pass: bucket the winning objects in document order and
	// derive edges from relationship records.
	for i := range b.Objects {
		o := &b.Objects[i]
		if o.Type == TypeRelationship {
			idx.addEdge(o, logger)
			continue
		}
		if idx.byID[o.ID] == o {
			idx.byType[o.Type] = append(idx.byType[o.Type], o)
		}
	}

	return idx, nil
}

func (idx *Index) addEdge(o *Object, logger *slog.Logger) {
	edge := &Relationship{
		SourceID: o.SourceRef,
		TargetID: o.TargetRef,
		Kind:     o.RelationshipType,
	}
	for _, end := range []string{edge.SourceID, edge.TargetID} {
		if _, ok := idx.byID[end]; !ok {
			logger.Warn("relationship references unknown object",
				"endpoint", end, "kind", edge.Kind)
			idx.report.Issues = append(idx.report.Issues, QualityIssue{
				Kind:     "dangling_edge",
				ObjectID: end,
				Detail:   "relationship endpoint does not resolve to an object",
			})
		}
	}

	idx.edges = append(idx.edges, edge)
	idx.touching[edge.SourceID] = append(idx.touching[edge.SourceID], edge)
	if edge.TargetID != edge.SourceID {
		idx.touching[edge.TargetID] = append(idx.touching[edge.TargetID], edge)
	}
}

// ObjectsOfType returns the objects of the given type in document order.
// The returned slice is shared with the index and must not be modified.
func (idx *Index) ObjectsOfType(t ObjectType) []*Object {
	return idx.byType[t]
}

// ObjectByID returns the object with the given id, or false when the id is
// unknown. Under duplicate ids this is the last occurrence in the document.
func (idx *Index) ObjectByID(id string) (*Object, bool) {
	o, ok := idx.byID[id]
	return o, ok
}

// EdgesTouching returns every relationship whose source or target is the
// given id, in document order. The returned slice is shared with the index
// and must not be modified.
func (idx *Index) EdgesTouching(id string) []*Relationship {
	return idx.touching[id]
}

// Edges returns all relationships in document order.
func (idx *Index) Edges() []*Relationship {
	return idx.edges
}

// Quality returns the data-quality report collected during the build.
func (idx *Index) Quality() QualityReport {
	return idx.report
}
