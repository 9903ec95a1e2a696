package entity

import (
	"time"

	"github.com/zero-day-ai/attck/stix"
)

// Tool is legitimate software repurposed by adversaries.
type Tool struct {
	graph *Graph
	obj   *stix.Object

	// ID is the ATT&CK identifier (e.g. "S0154"), or "" when the source
	// object carries none.
	ID string

	// StixID is the process-unique internal identifier.
	StixID string

	Name        string
	Description string
	Aliases     []string
	Labels      []string

	Revoked    bool
	Deprecated bool

	URL      string
	Created  time.Time
	Modified time.Time

	techniques   []*Technique
	techniquesOK bool
	actors       []*Actor
	actorsOK     bool
}

func newTool(g *Graph, o *stix.Object) *Tool {
	aliases := o.Aliases
	if len(aliases) == 0 {
		aliases = o.MITREAliases
	}
	return &Tool{
		graph:       g,
		obj:         o,
		ID:          externalID(o),
		StixID:      o.ID,
		Name:        o.Name,
		Description: o.Description,
		Aliases:     aliases,
		Labels:      o.Labels,
		Revoked:     o.Revoked,
		Deprecated:  o.Deprecated,
		URL:         mitreURL(o),
		Created:     o.Created,
		Modified:    o.Modified,
	}
}

// Kind returns KindTool.
func (t *Tool) Kind() Kind {
	return KindTool
}

// Techniques returns the techniques this tool is used to perform ("uses"
// edges originating at the tool).
func (t *Tool) Techniques() []*Technique {
	if !t.techniquesOK {
		objs := t.graph.resolve(t.StixID, stix.TypeTechnique, relUses, outbound)
		t.techniques = make([]*Technique, 0, len(objs))
		for _, o := range objs {
			t.techniques = append(t.techniques, newTechnique(t.graph, o))
		}
		t.techniquesOK = true
	}
	return t.techniques
}

// Actors returns the actors known to use this tool ("uses" edges pointing
// at the tool).
func (t *Tool) Actors() []*Actor {
	if !t.actorsOK {
		objs := t.graph.resolve(t.StixID, stix.TypeActor, relUses, inbound)
		t.actors = make([]*Actor, 0, len(objs))
		for _, o := range objs {
			t.actors = append(t.actors, newActor(t.graph, o))
		}
		t.actorsOK = true
	}
	return t.actors
}
