package entity

import (
	"time"

	"github.com/zero-day-ai/attck/stix"
)

// Tactic is a phase of an attack: the adversary's tactical goal.
type Tactic struct {
	graph *Graph
	obj   *stix.Object

	// ID is the ATT&CK identifier (e.g. "TA0002"), or "" when the source
	// object carries none.
	ID string

	// StixID is the process-unique internal identifier.
	StixID string

	Name        string
	Description string

	// ShortName is the phase name techniques reference in their
	// kill-chain phases (e.g. "execution").
	ShortName string

	URL      string
	Created  time.Time
	Modified time.Time

	techniques   []*Technique
	techniquesOK bool
}

func newTactic(g *Graph, o *stix.Object) *Tactic {
	return &Tactic{
		graph:       g,
		obj:         o,
		ID:          externalID(o),
		StixID:      o.ID,
		Name:        o.Name,
		Description: o.Description,
		ShortName:   o.ShortName,
		URL:         mitreURL(o),
		Created:     o.Created,
		Modified:    o.Modified,
	}
}

// Kind returns KindTactic.
func (t *Tactic) Kind() Kind {
	return KindTactic
}

// Techniques returns the techniques found in this phase, resolved via the
// reverse phase-name join. The result is memoized.
func (t *Tactic) Techniques() []*Technique {
	if !t.techniquesOK {
		t.techniques = t.graph.techniquesForPhase(t.obj.ShortName)
		t.techniquesOK = true
	}
	return t.techniques
}
