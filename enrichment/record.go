package enrichment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNoTechniques is returned when the enrichment document lacks its
// top-level techniques collection. Fatal at load time.
var ErrNoTechniques = errors.New("enrichment: document has no techniques collection")

// Command is one observed command-line example attributed to a technique.
type Command struct {
	// Source names the dataset the example came from.
	Source string `json:"source,omitempty"`

	// Command is the literal command text.
	Command string `json:"command"`

	// Name optionally labels the example.
	Name string `json:"name,omitempty"`
}

// Query is a detection query for a specific product.
type Query struct {
	Product string `json:"product,omitempty"`
	Query   string `json:"query"`
}

// Record is the enrichment data for one technique.
type Record struct {
	// TechniqueID is the ATT&CK technique id this record joins on
	// (e.g. "T1059").
	TechniqueID string `json:"technique_id"`

	// Commands are observed command examples for the technique.
	Commands []Command `json:"commands,omitempty"`

	// CommandList is a flat list of raw command strings, where the
	// source dataset carries no per-command attribution.
	CommandList []string `json:"command_list,omitempty"`

	// Queries are product-specific detection queries.
	Queries []Query `json:"queries,omitempty"`

	// Datasets holds references into the parsed source datasets. The
	// shape varies per dataset, so entries stay schemaless.
	Datasets []map[string]any `json:"parsed_datasets,omitempty"`
}

// Document is the top-level enrichment dataset.
type Document struct {
	Techniques []Record `json:"techniques"`
}

// DecodeDocument parses an enrichment document from r. A document without a
// techniques collection is a schema error; an empty collection is fine.
func DecodeDocument(r io.Reader) (*Document, error) {
	var raw struct {
		Techniques *json.RawMessage `json:"techniques"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("enrichment: decoding document: %w", err)
	}
	if raw.Techniques == nil {
		return nil, ErrNoTechniques
	}

	doc := &Document{}
	if err := json.Unmarshal(*raw.Techniques, &doc.Techniques); err != nil {
		return nil, fmt.Errorf("enrichment: decoding techniques: %w", err)
	}
	return doc, nil
}
