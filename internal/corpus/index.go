package corpus

import (
	"sort"

	"github.com/pressroom-io/pressroom/internal/document"
	"github.com/pressroom-io/pressroom/internal/relation"
)

// Indexes holds the derived views over a completed document set.
type Indexes struct {
	// Chronological orders every document newest-first by publish time;
	// documents without one sort last, in ingestion order among themselves.
	Chronological []document.ID
	// ByTag maps each tag to its documents in chronological index order.
	ByTag map[string][]document.ID
	// Related maps each document to its one-hop neighbors, symmetric and
	// deduplicated, ordered by the neighbor's ingestion order.
	Related map[document.ID][]document.ID
}

// BuildIndexes derives all indexes in one pass over the full document set.
// It must only run once every input has been ingested or rejected: the
// chronological order is global. Pure: identical inputs always produce
// identical indexes, so a re-run is a byte-identical no-op.
func BuildIndexes(docs []*document.Document, edges []document.RelationEdge) Indexes {
	ordered := append([]*document.Document(nil), docs...)
	sort.Slice(ordered, func(i, j int) bool {
		return chronoLess(ordered[i], ordered[j])
	})

	idx := Indexes{
		Chronological: make([]document.ID, 0, len(ordered)),
		ByTag:         make(map[string][]document.ID),
		Related:       relation.Neighbors(edges),
	}
	for _, d := range ordered {
		idx.Chronological = append(idx.Chronological, d.ID)
		for _, tag := range d.Header.Tags {
			idx.ByTag[tag] = append(idx.ByTag[tag], d.ID)
		}
	}
	return idx
}

// chronoLess is the total order behind the chronological index: publish
// time descending, undated documents last, all ties broken by ingestion
// order ascending.
func chronoLess(a, b *document.Document) bool {
	switch {
	case a.Header.PublishedAt == nil && b.Header.PublishedAt == nil:
		return a.ID < b.ID
	case a.Header.PublishedAt == nil:
		return false
	case b.Header.PublishedAt == nil:
		return true
	case a.Header.PublishedAt.Equal(*b.Header.PublishedAt):
		return a.ID < b.ID
	default:
		return a.Header.PublishedAt.After(*b.Header.PublishedAt)
	}
}
