package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/zero-day-ai/attck/enrichment"
	"github.com/zero-day-ai/attck/stix"
)

// Technique is an individual adversary action used to accomplish one or
// more tactics.
type Technique struct {
	graph *Graph
	obj   *stix.Object

	// ID is the ATT&CK identifier (e.g. "T1059"), or "" when the source
	// object carries none.
	ID string

	// StixID is the process-unique internal identifier.
	StixID string

	Name        string
	Description string

	// Detection is the dataset's note on how hard the technique is to
	// detect and what to look for.
	Detection string

	Platforms           []string
	PermissionsRequired []string
	DataSources         []string
	DefenseBypassed     []string

	// SubTechnique is true for finer-grained technique variants.
	SubTechnique bool

	Revoked    bool
	Deprecated bool

	URL      string
	Created  time.Time
	Modified time.Time

	tactics       []*Tactic
	tacticsOK     bool
	mitigations   []*Mitigation
	mitigationsOK bool
	actors        []*Actor
	actorsOK      bool
	tools         []*Tool
	toolsOK       bool
	malwares      []*Malware
	malwaresOK    bool
}

func newTechnique(g *Graph, o *stix.Object) *Technique {
	return &Technique{
		graph:               g,
		obj:                 o,
		ID:                  externalID(o),
		StixID:              o.ID,
		Name:                o.Name,
		Description:         o.Description,
		Detection:           o.Detection,
		Platforms:           o.Platforms,
		PermissionsRequired: o.PermissionsRequired,
		DataSources:         o.DataSources,
		DefenseBypassed:     o.DefenseBypassed,
		SubTechnique:        o.SubTechnique,
		Revoked:             o.Revoked,
		Deprecated:          o.Deprecated,
		URL:                 mitreURL(o),
		Created:             o.Created,
		Modified:            o.Modified,
	}
}

// Kind returns KindTechnique.
func (t *Technique) Kind() Kind {
	return KindTechnique
}

// Tactics returns the phases this technique belongs to. Membership is read
// from the technique's kill-chain phase list, not from edges.
func (t *Technique) Tactics() []*Tactic {
	if !t.tacticsOK {
		t.tactics = t.graph.tacticsForPhases(t.obj.KillChainPhases)
		t.tacticsOK = true
	}
	return t.tactics
}

// Mitigations returns the courses of action that mitigate this technique
// ("mitigates" edges pointing at the technique). A technique nothing
// mitigates yields an empty slice.
func (t *Technique) Mitigations() []*Mitigation {
	if !t.mitigationsOK {
		objs := t.graph.resolve(t.StixID, stix.TypeMitigation, relMitigates, inbound)
		t.mitigations = make([]*Mitigation, 0, len(objs))
		for _, o := range objs {
			t.mitigations = append(t.mitigations, newMitigation(t.graph, o))
		}
		t.mitigationsOK = true
	}
	return t.mitigations
}

// Actors returns the actors known to use this technique ("uses" edges
// pointing at the technique).
func (t *Technique) Actors() []*Actor {
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

// Tools returns the tools this technique is used with ("uses" edges
// pointing at the technique).
func (t *Technique) Tools() []*Tool {
	if !t.toolsOK {
		objs := t.graph.resolve(t.StixID, stix.TypeTool, relUses, inbound)
		t.tools = make([]*Tool, 0, len(objs))
		for _, o := range objs {
			t.tools = append(t.tools, newTool(t.graph, o))
		}
		t.toolsOK = true
	}
	return t.tools
}

// Malwares returns the malware this technique is used with ("uses" edges
// pointing at the technique).
func (t *Technique) Malwares() []*Malware {
	if !t.malwaresOK {
		objs := t.graph.resolve(t.StixID, stix.TypeMalware, relUses, inbound)
		t.malwares = make([]*Malware, 0, len(objs))
		for _, o := range objs {
			t.malwares = append(t.malwares, newMalware(t.graph, o))
		}
		t.malwaresOK = true
	}
	return t.malwares
}

// Enrichment returns the auxiliary record joined to this technique by
// ATT&CK id. The second return is false when no record exists.
func (t *Technique) Enrichment() (*enrichment.Record, bool) {
	if t.ID == "" {
		return nil, false
	}
	return t.graph.enrich.ForTechnique(t.ID)
}

// CommandMatch is one hit from a command-example search.
type CommandMatch struct {
	// Technique is the technique whose enrichment record matched.
	Technique *Technique

	// MatchedText is the command text containing the keyword.
	MatchedText string

	// ReasonForMatch explains why the command was selected.
	ReasonForMatch string
}

// SearchCommands scans this technique's joined enrichment commands for the
// keyword, case-insensitively. A technique without enrichment yields an
// empty result, not an error.
func (t *Technique) SearchCommands(keyword string) []CommandMatch {
	rec, ok := t.Enrichment()
	if !ok || keyword == "" {
		return nil
	}
	needle := strings.ToLower(keyword)
	reason := fmt.Sprintf("command example contains %q", keyword)

	var out []CommandMatch
	for _, cmd := range rec.Commands {
		if strings.Contains(strings.ToLower(cmd.Command), needle) {
			out = append(out, CommandMatch{
				Technique:      t,
				MatchedText:    cmd.Command,
				ReasonForMatch: reason,
			})
		}
	}
	for _, cmd := range rec.CommandList {
		if strings.Contains(strings.ToLower(cmd), needle) {
			out = append(out, CommandMatch{
				Technique:      t,
				MatchedText:    cmd,
				ReasonForMatch: reason,
			})
		}
	}
	return out
}

// Attributes projects the technique's descriptive fields into a map for
// expression-based filtering.
func (t *Technique) Attributes() map[string]any {
	return map[string]any{
		"id":            t.ID,
		"name":          t.Name,
		"description":   t.Description,
		"detection":     t.Detection,
		"platforms":     t.Platforms,
		"permissions":   t.PermissionsRequired,
		"data_sources":  t.DataSources,
		"sub_technique": t.SubTechnique,
		"revoked":       t.Revoked,
		"deprecated":    t.Deprecated,
	}
}
