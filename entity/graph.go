package entity

import (
	"github.com/zero-day-ai/attck/enrichment"
	"github.com/zero-day-ai/attck/stix"
)

// Graph mints typed entity views over one loaded document generation.
// It pairs the graph index with the enrichment joiner so techniques can
// reach their auxiliary records.
//
// A Graph is immutable and safe for concurrent use; the entities it mints
// memoize lazily and are not.
type Graph struct {
	index  *stix.Index
	enrich *enrichment.Joiner
}

// NewGraph wraps an index and an enrichment joiner. A nil joiner is
// accepted and reports every technique's enrichment as absent.
func NewGraph(index *stix.Index, enrich *enrichment.Joiner) *Graph {
	if enrich == nil {
		enrich = enrichment.NewJoiner(nil)
	}
	return &Graph{index: index, enrich: enrich}
}

// Index returns the underlying graph index.
func (g *Graph) Index() *stix.Index {
	return g.index
}

// Tactics returns all tactics in document order.
func (g *Graph) Tactics() []*Tactic {
	objs := g.index.ObjectsOfType(stix.TypeTactic)
	out := make([]*Tactic, 0, len(objs))
	for _, o := range objs {
		out = append(out, newTactic(g, o))
	}
	return out
}

// Techniques returns all techniques in document order.
func (g *Graph) Techniques() []*Technique {
	objs := g.index.ObjectsOfType(stix.TypeTechnique)
	out := make([]*Technique, 0, len(objs))
	for _, o := range objs {
		out = append(out, newTechnique(g, o))
	}
	return out
}

// Mitigations returns all mitigations in document order.
func (g *Graph) Mitigations() []*Mitigation {
	objs := g.index.ObjectsOfType(stix.TypeMitigation)
	out := make([]*Mitigation, 0, len(objs))
	for _, o := range objs {
		out = append(out, newMitigation(g, o))
	}
	return out
}

// Actors returns all actors in document order.
func (g *Graph) Actors() []*Actor {
	objs := g.index.ObjectsOfType(stix.TypeActor)
	out := make([]*Actor, 0, len(objs))
	for _, o := range objs {
		out = append(out, newActor(g, o))
	}
	return out
}

// Tools returns all tools in document order.
func (g *Graph) Tools() []*Tool {
	objs := g.index.ObjectsOfType(stix.TypeTool)
	out := make([]*Tool, 0, len(objs))
	for _, o := range objs {
		out = append(out, newTool(g, o))
	}
	return out
}

// Malwares returns all malware entries in document order.
func (g *Graph) Malwares() []*Malware {
	objs := g.index.ObjectsOfType(stix.TypeMalware)
	out := make([]*Malware, 0, len(objs))
	for _, o := range objs {
		out = append(out, newMalware(g, o))
	}
	return out
}

// mitreURL extracts the ATT&CK catalog URL from an object's external
// references, or "" when absent.
func mitreURL(o *stix.Object) string {
	for _, ref := range o.ExternalReferences {
		if ref.SourceName == stix.MITRESourceName {
			return ref.URL
		}
	}
	return ""
}

// externalID extracts the ATT&CK id, or "" when absent. Absence is a data
// gap, not an error; entities expose the empty id as-is.
func externalID(o *stix.Object) string {
	id, _ := o.ExternalID()
	return id
}
