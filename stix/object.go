package stix

import (
	"time"
)

// ObjectType identifies the declared type of a STIX object.
type ObjectType string

// Object type constants cover the ATT&CK node kinds plus the relationship
// record type that links them.
const (
	// TypeTactic is an ATT&CK tactic, the phase an adversary is trying
	// to accomplish (STIX type "x-mitre-tactic").
	TypeTactic ObjectType = "x-mitre-tactic"

	// TypeTechnique is an ATT&CK technique or sub-technique, an individual
	// adversary action (STIX type "attack-pattern").
	TypeTechnique ObjectType = "attack-pattern"

	// TypeMitigation is a course of action that prevents or detects a
	// technique (STIX type "course-of-action").
	TypeMitigation ObjectType = "course-of-action"

	// TypeActor is a tracked threat actor or group (STIX type "intrusion-set").
	TypeActor ObjectType = "intrusion-set"

	// TypeTool is legitimate software repurposed by adversaries.
	TypeTool ObjectType = "tool"

	// TypeMalware is malicious software used to accomplish techniques.
	TypeMalware ObjectType = "malware"

	// TypeRelationship is the directed edge record connecting two objects.
	TypeRelationship ObjectType = "relationship"
)

// String returns the string representation of the object type.
func (t ObjectType) String() string {
	return string(t)
}

// IsValid returns true if the object type is one this package indexes.
func (t ObjectType) IsValid() bool {
	switch t {
	case TypeTactic, TypeTechnique, TypeMitigation, TypeActor,
		TypeTool, TypeMalware, TypeRelationship:
		return true
	default:
		return false
	}
}

// IsNode returns true for object types that represent knowledge-base nodes
// rather than relationship records.
func (t ObjectType) IsNode() bool {
	return t.IsValid() && t != TypeRelationship
}

// Description returns a human-readable description of the object type.
func (t ObjectType) Description() string {
	switch t {
	case TypeTactic:
		return "Tactic: the adversary's tactical goal, a phase of an attack"
	case TypeTechnique:
		return "Technique: an individual action used to accomplish a tactic"
	case TypeMitigation:
		return "Mitigation: a course of action that prevents or detects a technique"
	case TypeActor:
		return "Actor: a tracked intrusion set, threat actor, or group"
	case TypeTool:
		return "Tool: legitimate software leveraged by adversaries"
	case TypeMalware:
		return "Malware: malicious software used by adversaries"
	case TypeRelationship:
		return "Relationship: a directed edge between two objects"
	default:
		return "Unknown object type"
	}
}

// MITRESourceName is the external-reference source that carries the ATT&CK
// identifier (e.g. T1059, TA0002) for an object.
const MITRESourceName = "mitre-attack"

// ExternalReference is a pointer from an object to an external catalog entry.
type ExternalReference struct {
	// SourceName identifies the referenced catalog (e.g. "mitre-attack").
	SourceName string `json:"source_name"`

	// ExternalID is the identifier within that catalog (e.g. "T1059").
	ExternalID string `json:"external_id,omitempty"`

	// URL links to the catalog entry.
	URL string `json:"url,omitempty"`

	// Description is optional free-form context for the reference.
	Description string `json:"description,omitempty"`
}

// KillChainPhase places a technique in a named phase of a kill chain.
// ATT&CK uses phase names that match tactic short names.
type KillChainPhase struct {
	KillChainName string `json:"kill_chain_name"`
	PhaseName     string `json:"phase_name"`
}

// Object is one record of the graph-exchange document. All node kinds share
// this schema superset; which fields are populated depends on Type. The
// struct is the single mapping boundary from the document's JSON to Go;
// consumers never touch raw maps.
//
// Objects are immutable once decoded. Entity views and traversal share them
// by pointer and must not modify them.
type Object struct {
	// ID is the process-unique STIX identifier (e.g. "attack-pattern--<uuid>").
	ID string `json:"id"`

	// Type is the declared object type.
	Type ObjectType `json:"type"`

	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Created     time.Time `json:"created,omitzero"`
	Modified    time.Time `json:"modified,omitzero"`

	// ExternalReferences carries catalog identifiers; the entry whose
	// SourceName is "mitre-attack" holds the ATT&CK id.
	ExternalReferences []ExternalReference `json:"external_references,omitempty"`

	// KillChainPhases lists the tactics a technique belongs to, by phase
	// name. Tactic membership is carried here, not as relationship records.
	KillChainPhases []KillChainPhase `json:"kill_chain_phases,omitempty"`

	// Aliases are alternative names for actors, tools, and malware.
	Aliases      []string `json:"aliases,omitempty"`
	MITREAliases []string `json:"x_mitre_aliases,omitempty"`

	// Revoked and Deprecated objects stay in the dataset; callers that
	// care can filter on these flags.
	Revoked    bool `json:"revoked,omitempty"`
	Deprecated bool `json:"x_mitre_deprecated,omitempty"`

	// ShortName is the tactic's phase name (tactics only), joined against
	// technique kill-chain phases.
	ShortName string `json:"x_mitre_shortname,omitempty"`

	// Technique-specific fields.
	Detection           string   `json:"x_mitre_detection,omitempty"`
	Platforms           []string `json:"x_mitre_platforms,omitempty"`
	PermissionsRequired []string `json:"x_mitre_permissions_required,omitempty"`
	DataSources         []string `json:"x_mitre_data_sources,omitempty"`
	DefenseBypassed     []string `json:"x_mitre_defense_bypassed,omitempty"`
	SubTechnique        bool     `json:"x_mitre_is_subtechnique,omitempty"`

	// Labels carries the free-form type labels some datasets attach to
	// tools and malware.
	Labels []string `json:"labels,omitempty"`

	// Relationship fields, populated only when Type is TypeRelationship.
	SourceRef        string `json:"source_ref,omitempty"`
	TargetRef        string `json:"target_ref,omitempty"`
	RelationshipType string `json:"relationship_type,omitempty"`
}

// ExternalID returns the ATT&CK identifier for the object (e.g. "T1059"),
// taken from the mitre-attack external reference. The second return is
// false when the object carries no such reference.
func (o *Object) ExternalID() (string, bool) {
	for _, ref := range o.ExternalReferences {
		if ref.SourceName == MITRESourceName && ref.ExternalID != "" {
			return ref.ExternalID, true
		}
	}
	return "", false
}

// Relationship is a directed edge between two objects, derived from a
// relationship record at index-build time.
type Relationship struct {
	// SourceID is the object id at the edge's tail.
	SourceID string

	// TargetID is the object id at the edge's head.
	TargetID string

	// Kind names the edge's semantic role (e.g. "uses", "mitigates").
	// Kind strings are not self-describing as to direction; traversal
	// pairs each kind with an explicit direction.
	Kind string
}
