package entity

import (
	"github.com/zero-day-ai/attck/stix"
)

// Kind identifies an entity's node kind.
type Kind string

// Kind constants name the six node kinds of the knowledge base.
const (
	KindTactic     Kind = "tactic"
	KindTechnique  Kind = "technique"
	KindMitigation Kind = "mitigation"
	KindActor      Kind = "actor"
	KindTool       Kind = "tool"
	KindMalware    Kind = "malware"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is a recognized value.
func (k Kind) IsValid() bool {
	switch k {
	case KindTactic, KindTechnique, KindMitigation, KindActor, KindTool, KindMalware:
		return true
	default:
		return false
	}
}

// ObjectType returns the declared STIX type backing this kind.
func (k Kind) ObjectType() stix.ObjectType {
	switch k {
	case KindTactic:
		return stix.TypeTactic
	case KindTechnique:
		return stix.TypeTechnique
	case KindMitigation:
		return stix.TypeMitigation
	case KindActor:
		return stix.TypeActor
	case KindTool:
		return stix.TypeTool
	case KindMalware:
		return stix.TypeMalware
	default:
		return ""
	}
}
