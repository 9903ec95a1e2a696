package entity

import (
	"time"

	"github.com/zero-day-ai/attck/stix"
)

// Actor is a tracked threat actor or intrusion set.
type Actor struct {
	graph *Graph
	obj   *stix.Object

	// ID is the ATT&CK identifier (e.g. "G0016"), or "" when the source
	// object carries none.
	ID string

	// StixID is the process-unique internal identifier.
	StixID string

	Name        string
	Description string
	Aliases     []string

	Revoked    bool
	Deprecated bool

	URL      string
	Created  time.Time
	Modified time.Time

	techniques   []*Technique
	techniquesOK bool
	tools        []*Tool
	toolsOK      bool
	malwares     []*Malware
	malwaresOK   bool
}

func newActor(g *Graph, o *stix.Object) *Actor {
	return &Actor{
		graph:       g,
		obj:         o,
		ID:          externalID(o),
		StixID:      o.ID,
		Name:        o.Name,
		Description: o.Description,
		Aliases:     o.Aliases,
		Revoked:     o.Revoked,
		Deprecated:  o.Deprecated,
		URL:         mitreURL(o),
		Created:     o.Created,
		Modified:    o.Modified,
	}
}

// Kind returns KindActor.
func (a *Actor) Kind() Kind {
	return KindActor
}

// Techniques returns the techniques this actor uses ("uses" edges
// originating at the actor).
func (a *Actor) Techniques() []*Technique {
	if !a.techniquesOK {
		objs := a.graph.resolve(a.StixID, stix.TypeTechnique, relUses, outbound)
		a.techniques = make([]*Technique, 0, len(objs))
		for _, o := range objs {
			a.techniques = append(a.techniques, newTechnique(a.graph, o))
		}
		a.techniquesOK = true
	}
	return a.techniques
}

// Tools returns the tools this actor uses ("uses" edges originating at
// the actor).
func (a *Actor) Tools() []*Tool {
	if !a.toolsOK {
		objs := a.graph.resolve(a.StixID, stix.TypeTool, relUses, outbound)
		a.tools = make([]*Tool, 0, len(objs))
		for _, o := range objs {
			a.tools = append(a.tools, newTool(a.graph, o))
		}
		a.toolsOK = true
	}
	return a.tools
}

// Malwares returns the malware this actor uses ("uses" edges originating
// at the actor).
func (a *Actor) Malwares() []*Malware {
	if !a.malwaresOK {
		objs := a.graph.resolve(a.StixID, stix.TypeMalware, relUses, outbound)
		a.malwares = make([]*Malware, 0, len(objs))
		for _, o := range objs {
			a.malwares = append(a.malwares, newMalware(a.graph, o))
		}
		a.malwaresOK = true
	}
	return a.malwares
}
