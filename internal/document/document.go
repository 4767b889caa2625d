// Package document defines the corpus data model: raw inputs, parsed
// headers, documents, and the relations between them.
package document

import "time"

// RawDocument is one unparsed input unit. It is never mutated; the origin
// identifier (typically a relative file path) is used only in diagnostics.
type RawDocument struct {
	Origin string
	Data   []byte
}

// Header is the decoded metadata block of a document. Recognized fields are
// typed; anything else lands verbatim in Legacy so documents migrated from
// other systems keep their metadata without this core interpreting it.
type Header struct {
	Title         string
	PublishedAt   *time.Time
	Author        string
	Tags          []string
	Slug          string
	ExcerptMarker string
	Legacy        map[string]string
}

// ID is the sequence number assigned to a document in ingestion order. It is
// stable within one run and breaks ordering ties deterministically.
type ID int

// Document is a fully ingested unit: decoded header, body, resolved slug,
// and the ingestion-order identifier. Immutable once the model owns it.
type Document struct {
	ID      ID
	Slug    string
	Header  Header
	Body    string
	Excerpt string

	// Origin and Segment locate the document in its source container:
	// Segment is the zero-based position within the raw input when the
	// input was split, 0 otherwise.
	Origin  string
	Segment int
}

// RelationKind classifies a relation edge.
type RelationKind string

// SplitSibling links documents that were recovered from one combined raw
// input. It is currently the only relation kind.
const SplitSibling RelationKind = "split-sibling"

// RelationEdge is a directional pair of document identifiers. Edges are
// stored once per pair (Source < Target) but are symmetric in effect:
// related-document queries expand both directions.
type RelationEdge struct {
	Source ID
	Target ID
	Kind   RelationKind
}
