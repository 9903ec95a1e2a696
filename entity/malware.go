package entity

import (
	"time"

	"github.com/zero-day-ai/attck/stix"
)

// Malware is malicious software used by adversaries.
type Malware struct {
	graph *Graph
	obj   *stix.Object

	// ID is the ATT&CK identifier (e.g. "S0002"), or "" when the source
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

func newMalware(g *Graph, o *stix.Object) *Malware {
	aliases := o.Aliases
	if len(aliases) == 0 {
		aliases = o.MITREAliases
	}
	return &Malware{
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

// Kind returns KindMalware.
func (m *Malware) Kind() Kind {
	return KindMalware
}

// Techniques returns the techniques this malware is used to perform
// ("uses" edges originating at the malware).
func (m *Malware) Techniques() []*Technique {
	if !m.techniquesOK {
		objs := m.graph.resolve(m.StixID, stix.TypeTechnique, relUses, outbound)
		m.techniques = make([]*Technique, 0, len(objs))
		for _, o := range objs {
			m.techniques = append(m.techniques, newTechnique(m.graph, o))
		}
		m.techniquesOK = true
	}
	return m.techniques
}

// Actors returns the actors known to use this malware ("uses" edges
// pointing at the malware).
func (m *Malware) Actors() []*Actor {
	if !m.actorsOK {
		objs := m.graph.resolve(m.StixID, stix.TypeActor, relUses, inbound)
		m.actors = make([]*Actor, 0, len(objs))
		for _, o := range objs {
			m.actors = append(m.actors, newActor(m.graph, o))
		}
		m.actorsOK = true
	}
	return m.actors
}
