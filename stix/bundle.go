package stix

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Schema errors returned when a document does not carry the expected
// top-level collections. These are fatal at load time.
var (
	// ErrNotBundle is returned when the document's type is not "bundle".
	ErrNotBundle = errors.New("stix: document is not a bundle")

	// ErrNoObjects is returned when the bundle lacks an objects collection.
	ErrNoObjects = errors.New("stix: bundle has no objects collection")
)

// Bundle is the top-level graph-exchange document: a flat collection of
// objects, some of which are relationship records.
type Bundle struct {
	Type        string `json:"type"`
	ID          string `json:"id,omitempty"`
	SpecVersion string `json:"spec_version,omitempty"`

	Objects []Object `json:"objects"`
}

// DecodeBundle parses a graph-exchange document from r and validates that
// the expected top-level collections are present. Malformed JSON and schema
// violations are both surfaced as errors; per-object data quality is not
// checked here (see BuildIndex).
func DecodeBundle(r io.Reader) (*Bundle, error) {
	// Decode through RawMessage so a missing objects key is
	// distinguishable from an empty one.
	var raw struct {
		Type        string           `json:"type"`
		ID          string           `json:"id"`
		SpecVersion string           `json:"spec_version"`
		Objects     *json.RawMessage `json:"objects"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("stix: decoding bundle: %w", err)
	}
	if raw.Type != "bundle" {
		return nil, fmt.Errorf("%w: type %q", ErrNotBundle, raw.Type)
	}
	if raw.Objects == nil {
		return nil, ErrNoObjects
	}

	b := &Bundle{
		Type:        raw.Type,
		ID:          raw.ID,
		SpecVersion: raw.SpecVersion,
	}
	if err := json.Unmarshal(*raw.Objects, &b.Objects); err != nil {
		return nil, fmt.Errorf("stix: decoding bundle objects: %w", err)
	}
	return b, nil
}
