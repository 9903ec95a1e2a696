package entity

import (
	"github.com/zero-day-ai/attck/stix"
)

// Relationship kind strings used by the knowledge base. An edge's kind does
// not encode its direction; every accessor pairs a kind with an explicit
// direction below.
const (
	relUses      = "uses"
	relMitigates = "mitigates"
)

// direction selects which endpoint of an edge must match the node being
// resolved from.
type direction int

const (
	// outbound matches edges whose source is the node; neighbors are the
	// edge targets.
	outbound direction = iota

	// inbound matches edges whose target is the node; neighbors are the
	// edge sources.
	inbound
)

// resolve returns the objects one relationship hop away from sourceID,
// following edges of the given kind in the given direction and keeping only
// neighbors of the target type.
//
// Results preserve the document's edge order. Duplicate edges between the
// same pair are passed through as duplicate results: multi-edges can be a
// data-quality signal upstream and are not silently collapsed here.
// Dangling endpoints and neighbors of an unexpected type are skipped, since
// kind strings can theoretically connect anything in malformed data.
func (g *Graph) resolve(sourceID string, target stix.ObjectType, kind string, dir direction) []*stix.Object {
	var out []*stix.Object
	for _, e := range g.index.EdgesTouching(sourceID) {
		if e.Kind != kind {
			continue
		}
		var neighborID string
		switch dir {
		case outbound:
			if e.SourceID != sourceID {
				continue
			}
			neighborID = e.TargetID
		case inbound:
			if e.TargetID != sourceID {
				continue
			}
			neighborID = e.SourceID
		}
		o, ok := g.index.ObjectByID(neighborID)
		if !ok || o.Type != target {
			continue
		}
		out = append(out, o)
	}
	return out
}

// tacticsForPhases resolves tactic membership for a technique. Tactics are
// referenced by phase name embedded in the technique object, not by edges,
// so this joins phase names against tactic short names.
func (g *Graph) tacticsForPhases(phases []stix.KillChainPhase) []*Tactic {
	var out []*Tactic
	for _, ph := range phases {
		if ph.KillChainName != stix.MITRESourceName {
			continue
		}
		for _, o := range g.index.ObjectsOfType(stix.TypeTactic) {
			if o.ShortName == ph.PhaseName {
				out = append(out, newTactic(g, o))
			}
		}
	}
	return out
}

// techniquesForPhase is the reverse phase join: all techniques whose
// kill-chain phases include the given tactic short name.
func (g *Graph) techniquesForPhase(shortName string) []*Technique {
	var out []*Technique
	for _, o := range g.index.ObjectsOfType(stix.TypeTechnique) {
		for _, ph := range o.KillChainPhases {
			if ph.KillChainName == stix.MITRESourceName && ph.PhaseName == shortName {
				out = append(out, newTechnique(g, o))
				break
			}
		}
	}
	return out
}
