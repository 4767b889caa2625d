// Package relation builds the cross-document relation graph. The only
// relation produced today links split-siblings: documents recovered from
// one combined raw input. Content-similarity relatedness would be a second
// RelationKind; nothing here assumes a single kind.
package relation

import (
	"sort"

	"github.com/pressroom-io/pressroom/internal/document"
)

// SplitSiblings links every pair of documents ingested from the same raw
// input. Each unordered pair yields one edge with the lower ingestion
// identifier as the source; self-edges are impossible by construction.
func SplitSiblings(ids []document.ID) []document.RelationEdge {
	if len(ids) < 2 {
		return nil
	}

	ordered := append([]document.ID(nil), ids...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	var edges []document.RelationEdge
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			edges = append(edges, document.RelationEdge{
				Source: ordered[i],
				Target: ordered[j],
				Kind:   document.SplitSibling,
			})
		}
	}
	return edges
}

// Neighbors expands directional edge storage into the symmetric adjacency
// view queried by the model: for every edge (A,B), B is a neighbor of A and
// A of B. Neighbor lists are deduplicated and ordered by ingestion order.
func Neighbors(edges []document.RelationEdge) map[document.ID][]document.ID {
	adjacency := make(map[document.ID]map[document.ID]bool)
	link := func(from, to document.ID) {
		if from == to {
			return
		}
		if adjacency[from] == nil {
			adjacency[from] = make(map[document.ID]bool)
		}
		adjacency[from][to] = true
	}

	for _, e := range edges {
		link(e.Source, e.Target)
		link(e.Target, e.Source)
	}

	out := make(map[document.ID][]document.ID, len(adjacency))
	for id, set := range adjacency {
		neighbors := make([]document.ID, 0, len(set))
		for n := range set {
			neighbors = append(neighbors, n)
		}
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
		out[id] = neighbors
	}
	return out
}
