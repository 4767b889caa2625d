// Package corpus owns the ingestion run: it drives parsing across worker
// goroutines, resolves slugs against a run-scoped registry, assembles the
// relation graph, and materializes the derived indexes into the read-only
// Model the rest of the system queries.
package corpus

import (
	"sort"

	"github.com/pressroom-io/pressroom/internal/document"
)

// Model is the in-memory aggregate of one completed ingestion run. It is
// immutable after construction and safe for concurrent readers.
type Model struct {
	runID  string
	docs   []*document.Document
	bySlug map[string]*document.Document
	edges  []document.RelationEdge
	index  Indexes
	tags   []string
}

// newModel builds the model and its derived indexes in one pass. docs must
// be ordered by ID with docs[i].ID == i; the ingestor guarantees this.
func newModel(runID string, docs []*document.Document, edges []document.RelationEdge) *Model {
	m := &Model{
		runID:  runID,
		docs:   docs,
		bySlug: make(map[string]*document.Document, len(docs)),
		edges:  edges,
		index:  BuildIndexes(docs, edges),
	}
	for _, d := range docs {
		m.bySlug[d.Slug] = d
	}
	for tag := range m.index.ByTag {
		m.tags = append(m.tags, tag)
	}
	sort.Strings(m.tags)
	return m
}

// RunID identifies the ingestion run that produced this model.
func (m *Model) RunID() string { return m.runID }

// Len reports how many documents the model holds.
func (m *Model) Len() int { return len(m.docs) }

// DocumentBySlug looks a document up by its canonical identifier.
func (m *Model) DocumentBySlug(slug string) (*document.Document, bool) {
	d, ok := m.bySlug[slug]
	return d, ok
}

// AllDocumentsChronological returns every document, newest publish time
// first; documents without a publish time come last in ingestion order.
func (m *Model) AllDocumentsChronological() []*document.Document {
	return m.resolve(m.index.Chronological)
}

// DocumentsByTag returns the documents carrying the tag, in chronological
// index order. Unknown tags yield an empty slice.
func (m *Model) DocumentsByTag(tag string) []*document.Document {
	return m.resolve(m.index.ByTag[tag])
}

// RelatedDocuments returns the documents one relation hop away from id,
// ordered by ingestion order. The view is symmetric: if B is related to A,
// A is related to B.
func (m *Model) RelatedDocuments(id document.ID) []*document.Document {
	return m.resolve(m.index.Related[id])
}

// Tags lists every tag present in the corpus, sorted.
func (m *Model) Tags() []string {
	return append([]string(nil), m.tags...)
}

// Edges returns a copy of the relation graph.
func (m *Model) Edges() []document.RelationEdge {
	return append([]document.RelationEdge(nil), m.edges...)
}

func (m *Model) resolve(ids []document.ID) []*document.Document {
	out := make([]*document.Document, 0, len(ids))
	for _, id := range ids {
		if int(id) < len(m.docs) {
			out = append(out, m.docs[id])
		}
	}
	return out
}
