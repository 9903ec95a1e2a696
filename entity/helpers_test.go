package entity

import (
	"log/slog"
	"testing"

	"github.com/zero-day-ai/attck/enrichment"
	"github.com/zero-day-ai/attck/stix"
)

// Fixture object ids.
const (
	tacExecution   = "x-mitre-tactic--execution"
	tacPersistence = "x-mitre-tactic--persistence"
	tecScripting   = "attack-pattern--scripting"
	tecRunKeys     = "attack-pattern--runkeys"
	tecOrphan      = "attack-pattern--orphan"
	mitDisable     = "course-of-action--disable"
	actAPT99       = "intrusion-set--apt99"
	tooPsExec      = "tool--psexec"
	malStuxnet     = "malware--stuxnet"
)

func mitreRef(id string) []stix.ExternalReference {
	return []stix.ExternalReference{{
		SourceName: stix.MITRESourceName,
		ExternalID: id,
		URL:        "https://attack.mitre.org/" + id,
	}}
}

func phase(name string) stix.KillChainPhase {
	return stix.KillChainPhase{KillChainName: stix.MITRESourceName, PhaseName: name}
}

func edge(src, dst, kind string) stix.Object {
	return stix.Object{Type: stix.TypeRelationship, SourceRef: src, TargetRef: dst, RelationshipType: kind}
}

// testBundle wires a small but complete knowledge base:
//
//	APT99  --uses-->  Scripting, PsExec, Stuxnet
//	PsExec --uses-->  Scripting        (twice: duplicate edge passthrough)
//	Stuxnet --uses--> Scripting
//	Disable --mitigates--> Scripting
//	Scripting in phase execution; RunKeys in phase persistence
//	Orphan has no edges and no phases
//	One malformed "uses" edge points from APT99 at the mitigation
func testBundle() *stix.Bundle {
	return &stix.Bundle{
		Type: "bundle",
		Objects: []stix.Object{
			{Type: stix.TypeTactic, ID: tacExecution, Name: "Execution", ShortName: "execution",
				ExternalReferences: mitreRef("TA0002")},
			{Type: stix.TypeTactic, ID: tacPersistence, Name: "Persistence", ShortName: "persistence",
				ExternalReferences: mitreRef("TA0003")},
			{Type: stix.TypeTechnique, ID: tecScripting, Name: "Scripting",
				Description:        "Adversaries may use scripts.",
				Detection:          "Monitor script execution.",
				Platforms:          []string{"Windows", "Linux"},
				KillChainPhases:    []stix.KillChainPhase{phase("execution")},
				ExternalReferences: mitreRef("T1059")},
			{Type: stix.TypeTechnique, ID: tecRunKeys, Name: "Registry Run Keys",
				KillChainPhases:    []stix.KillChainPhase{phase("persistence")},
				ExternalReferences: mitreRef("T1547")},
			{Type: stix.TypeTechnique, ID: tecOrphan, Name: "Orphan Technique",
				ExternalReferences: mitreRef("T9999")},
			{Type: stix.TypeMitigation, ID: mitDisable, Name: "Disable or Remove Feature",
				ExternalReferences: mitreRef("M1042")},
			{Type: stix.TypeActor, ID: actAPT99, Name: "APT99",
				Aliases:            []string{"Group 99"},
				ExternalReferences: mitreRef("G0099")},
			{Type: stix.TypeTool, ID: tooPsExec, Name: "PsExec",
				ExternalReferences: mitreRef("S0029")},
			{Type: stix.TypeMalware, ID: malStuxnet, Name: "Stuxnet",
				ExternalReferences: mitreRef("S0603")},

			edge(actAPT99, tecScripting, "uses"),
			edge(actAPT99, tooPsExec, "uses"),
			edge(actAPT99, malStuxnet, "uses"),
			edge(tooPsExec, tecScripting, "uses"),
			edge(tooPsExec, tecScripting, "uses"), // duplicate on purpose
			edge(malStuxnet, tecScripting, "uses"),
			edge(mitDisable, tecScripting, "mitigates"),
			edge(actAPT99, mitDisable, "uses"), // malformed target kind
		},
	}
}

func testEnrichment() *enrichment.Document {
	return &enrichment.Document{
		Techniques: []enrichment.Record{
			{
				TechniqueID: "T1059",
				Commands: []enrichment.Command{
					{Source: "atomics", Command: "PowerShell -ExecutionPolicy Bypass -File evil.ps1"},
					{Source: "atomics", Command: "cscript.exe payload.vbs"},
				},
				CommandList: []string{"powershell -enc SQBFAFgA"},
			},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testGraph(t *testing.T) *Graph {
	t.Helper()
	idx, err := stix.BuildIndex(testBundle(), discardLogger())
	if err != nil {
		t.Fatalf("BuildIndex() error = %v", err)
	}
	return NewGraph(idx, enrichment.NewJoiner(testEnrichment()))
}

func findTechnique(t *testing.T, g *Graph, id string) *Technique {
	t.Helper()
	for _, tech := range g.Techniques() {
		if tech.ID == id {
			return tech
		}
	}
	t.Fatalf("technique %s not found", id)
	return nil
}
