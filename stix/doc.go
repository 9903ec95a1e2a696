// Package stix models the STIX 2 graph-exchange documents that carry the
// MITRE ATT&CK knowledge base: a flat bundle of typed objects plus untyped
// relationship records referencing object identifiers.
//
// The package has two halves:
//
//   - Decoding: Bundle and Object map the bundle's JSON schema onto fixed
//     Go structs. Unknown or missing optional fields decode to zero values;
//     nothing here panics on sparse data.
//   - Indexing: Index classifies objects by declared type and builds the
//     lookup tables every relationship traversal depends on (object by id,
//     edges touching an id, objects of a type).
//
// Index construction is the only place data-quality problems are detected.
// Duplicate identifiers and dangling relationship endpoints are recorded in
// a QualityReport and logged as warnings, never raised as errors. Upstream
// datasets are not perfectly curated, and traversal tolerates the gaps.
package stix
