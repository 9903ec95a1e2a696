// Package entity exposes the ATT&CK knowledge base as typed, navigable
// views: Tactic, Technique, Mitigation, Actor, Tool, and Malware.
//
// Each entity is a read-only projection of exactly one stix.Object, mapped
// to fixed fields at construction so that missing or unexpected document
// fields are absorbed at a single boundary. Entities are cheap, disposable
// views, minted fresh on every collection access and never persisted.
//
// Relationship accessors resolve lazily against the shared graph index. The
// (relationship kind, direction) pair for each source/target kind pairing
// is hard-coded, because kind strings like "uses" do not describe direction
// on their own. Resolved neighbors are memoized per entity; an entity is
// therefore intended for use by a single goroutine, while the underlying
// Graph is safe to share.
package entity
