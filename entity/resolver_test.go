package entity

import (
	"testing"
)

func TestTechnique_Mitigations(t *testing.T) {
	g := testGraph(t)
	tech := findTechnique(t, g, "T1059")

	mits := tech.Mitigations()
	if len(mits) != 1 {
		t.Fatalf("len(Mitigations()) = %d, want 1", len(mits))
	}
	if mits[0].ID != "M1042" || mits[0].Name != "Disable or Remove Feature" {
		t.Errorf("Mitigations()[0] = %s %q", mits[0].ID, mits[0].Name)
	}
}

func TestTechnique_NoMitigationsIsEmpty(t *testing.T) {
	g := testGraph(t)
	tech := findTechnique(t, g, "T9999")

	if got := tech.Mitigations(); len(got) != 0 {
		t.Errorf("Mitigations() = %d results, want empty", len(got))
	}
	if got := tech.Actors(); len(got) != 0 {
		t.Errorf("Actors() = %d results, want empty", len(got))
	}
	if got := tech.Tactics(); len(got) != 0 {
		t.Errorf("Tactics() = %d results, want empty", len(got))
	}
}

func TestTechnique_UsedBy(t *testing.T) {
	g := testGraph(t)
	tech := findTechnique(t, g, "T1059")

	actors := tech.Actors()
	if len(actors) != 1 || actors[0].Name != "APT99" {
		t.Fatalf("Actors() = %+v, want APT99", actors)
	}

	// Two "uses" edges link PsExec to the technique; both pass through.
	tools := tech.Tools()
	if len(tools) != 2 {
		t.Fatalf("len(Tools()) = %d, want 2 (duplicate edges preserved)", len(tools))
	}
	if tools[0].Name != "PsExec" || tools[1].Name != "PsExec" {
		t.Errorf("Tools() = %q, %q", tools[0].Name, tools[1].Name)
	}

	malwares := tech.Malwares()
	if len(malwares) != 1 || malwares[0].Name != "Stuxnet" {
		t.Errorf("Malwares() = %+v, want Stuxnet", malwares)
	}
}

func TestActor_Relationships(t *testing.T) {
	g := testGraph(t)
	actors := g.Actors()
	if len(actors) != 1 {
		t.Fatalf("len(Actors()) = %d, want 1", len(actors))
	}
	apt := actors[0]

	techniques := apt.Techniques()
	if len(techniques) != 1 || techniques[0].ID != "T1059" {
		t.Errorf("Techniques() = %+v, want T1059 only", techniques)
	}

	tools := apt.Tools()
	if len(tools) != 1 || tools[0].Name != "PsExec" {
		t.Errorf("Tools() = %+v, want PsExec", tools)
	}

	malwares := apt.Malwares()
	if len(malwares) != 1 || malwares[0].Name != "Stuxnet" {
		t.Errorf("Malwares() = %+v, want Stuxnet", malwares)
	}
}

// The "uses" edge from APT99 to the mitigation is malformed data: kind
// filtering must drop it everywhere rather than surfacing a mitigation as
// a technique, tool, or malware.
func TestResolver_KindFilterDropsMalformedEdges(t *testing.T) {
	g := testGraph(t)
	apt := g.Actors()[0]

	for _, tech := range apt.Techniques() {
		if tech.StixID == mitDisable {
			t.Error("mitigation leaked into Techniques()")
		}
	}
	if len(apt.Techniques())+len(apt.Tools())+len(apt.Malwares()) != 3 {
		t.Errorf("actor neighbors = %d, want 3", len(apt.Techniques())+len(apt.Tools())+len(apt.Malwares()))
	}
}

func TestTool_Relationships(t *testing.T) {
	g := testGraph(t)
	tools := g.Tools()
	if len(tools) != 1 {
		t.Fatalf("len(Tools()) = %d, want 1", len(tools))
	}
	psexec := tools[0]

	// Duplicate edges pass through in Techniques too.
	techniques := psexec.Techniques()
	if len(techniques) != 2 || techniques[0].ID != "T1059" {
		t.Errorf("Techniques() = %+v, want T1059 twice", techniques)
	}

	actors := psexec.Actors()
	if len(actors) != 1 || actors[0].Name != "APT99" {
		t.Errorf("Actors() = %+v, want APT99", actors)
	}
}

func TestMalware_Relationships(t *testing.T) {
	g := testGraph(t)
	malwares := g.Malwares()
	if len(malwares) != 1 {
		t.Fatalf("len(Malwares()) = %d, want 1", len(malwares))
	}
	stuxnet := malwares[0]

	techniques := stuxnet.Techniques()
	if len(techniques) != 1 || techniques[0].ID != "T1059" {
		t.Errorf("Techniques() = %+v, want T1059", techniques)
	}

	actors := stuxnet.Actors()
	if len(actors) != 1 || actors[0].Name != "APT99" {
		t.Errorf("Actors() = %+v, want APT99", actors)
	}
}

func TestMitigation_Techniques(t *testing.T) {
	g := testGraph(t)
	mits := g.Mitigations()
	if len(mits) != 1 {
		t.Fatalf("len(Mitigations()) = %d, want 1", len(mits))
	}

	techniques := mits[0].Techniques()
	if len(techniques) != 1 || techniques[0].ID != "T1059" {
		t.Errorf("Techniques() = %+v, want T1059", techniques)
	}
}

func TestPhaseJoin(t *testing.T) {
	g := testGraph(t)

	tech := findTechnique(t, g, "T1059")
	tactics := tech.Tactics()
	if len(tactics) != 1 || tactics[0].ShortName != "execution" {
		t.Fatalf("Tactics() = %+v, want the execution phase", tactics)
	}

	// Reverse join: the execution tactic sees only the scripting technique.
	techniques := tactics[0].Techniques()
	if len(techniques) != 1 || techniques[0].ID != "T1059" {
		t.Errorf("Tactic.Techniques() = %+v, want T1059", techniques)
	}

	// And persistence sees only run keys.
	for _, tac := range g.Tactics() {
		if tac.ShortName != "persistence" {
			continue
		}
		got := tac.Techniques()
		if len(got) != 1 || got[0].ID != "T1547" {
			t.Errorf("persistence techniques = %+v, want T1547", got)
		}
	}
}

// Direction is asymmetric: an actor reaches its techniques through "uses"
// edges it originates, never through edges pointing at it.
func TestResolver_DirectionAsymmetry(t *testing.T) {
	g := testGraph(t)

	// PsExec originates a "uses" edge at the technique, so the technique
	// must not appear among the things that "use" PsExec.
	psexec := g.Tools()[0]
	for _, a := range psexec.Actors() {
		if a.StixID == tecScripting {
			t.Error("technique appeared as an actor of the tool")
		}
	}

	// The orphan technique has an id nothing references.
	orphan := findTechnique(t, g, "T9999")
	if got := orphan.Tools(); len(got) != 0 {
		t.Errorf("orphan Tools() = %+v, want empty", got)
	}
}

// Accessors memoize: repeated calls return the same resolved slice.
func TestResolver_Memoization(t *testing.T) {
	g := testGraph(t)
	tech := findTechnique(t, g, "T1059")

	first := tech.Mitigations()
	second := tech.Mitigations()
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("memoized result %d differs between calls", i)
		}
	}
}
