// Package enrichment models the auxiliary per-technique dataset that rides
// alongside the graph-exchange document: real-world command examples,
// detection queries, and dataset references keyed by ATT&CK technique id.
//
// Records join to techniques by external id (e.g. "T1059"). A technique
// with no record is normal, not an error; the joiner reports absence with
// an ok-bool.
package enrichment
