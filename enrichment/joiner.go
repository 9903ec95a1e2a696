package enrichment

// Joiner provides O(1) lookup of enrichment records by technique id.
// It is built once per loaded document and is immutable thereafter, so it
// is safe for concurrent readers.
type Joiner struct {
	byTechnique map[string]*Record
}

// NewJoiner indexes the document's records by technique id. Duplicate ids
// resolve last-write-wins, matching the graph index discipline. A nil
// document yields a joiner that reports every technique as absent.
func NewJoiner(doc *Document) *Joiner {
	j := &Joiner{byTechnique: make(map[string]*Record)}
	if doc == nil {
		return j
	}
	for i := range doc.Techniques {
		rec := &doc.Techniques[i]
		if rec.TechniqueID == "" {
			continue
		}
		j.byTechnique[rec.TechniqueID] = rec
	}
	return j
}

// ForTechnique returns the record joined to the given technique id. The
// second return is false when no record exists, which is normal for many
// techniques.
func (j *Joiner) ForTechnique(id string) (*Record, bool) {
	rec, ok := j.byTechnique[id]
	return rec, ok
}

// Len returns the number of joined records.
func (j *Joiner) Len() int {
	return len(j.byTechnique)
}
