package entity

import (
	"time"

	"github.com/zero-day-ai/attck/stix"
)

// Mitigation is a course of action that prevents or detects techniques.
type Mitigation struct {
	graph *Graph
	obj   *stix.Object

	// ID is the ATT&CK identifier (e.g. "M1038"), or "" when the source
	// object carries none.
	ID string

	// StixID is the process-unique internal identifier.
	StixID string

	Name        string
	Description string

	Revoked    bool
	Deprecated bool

	URL      string
	Created  time.Time
	Modified time.Time

	techniques   []*Technique
	techniquesOK bool
}

func newMitigation(g *Graph, o *stix.Object) *Mitigation {
	return &Mitigation{
		graph:       g,
		obj:         o,
		ID:          externalID(o),
		StixID:      o.ID,
		Name:        o.Name,
		Description: o.Description,
		Revoked:     o.Revoked,
		Deprecated:  o.Deprecated,
		URL:         mitreURL(o),
		Created:     o.Created,
		Modified:    o.Modified,
	}
}

// Kind returns KindMitigation.
func (m *Mitigation) Kind() Kind {
	return KindMitigation
}

// Techniques returns the techniques this mitigation applies to ("mitigates"
// edges originating at the mitigation).
func (m *Mitigation) Techniques() []*Technique {
	if !m.techniquesOK {
		objs := m.graph.resolve(m.StixID, stix.TypeTechnique, relMitigates, outbound)
		m.techniques = make([]*Technique, 0, len(objs))
		for _, o := range objs {
			m.techniques = append(m.techniques, newTechnique(m.graph, o))
		}
		m.techniquesOK = true
	}
	return m.techniques
}
