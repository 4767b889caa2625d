package relation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pressroom-io/pressroom/internal/document"
)

func TestSplitSiblings_PairsEveryCombination(t *testing.T) {
	edges := SplitSiblings([]document.ID{5, 2, 9})

	want := []document.RelationEdge{
		{Source: 2, Target: 5, Kind: document.SplitSibling},
		{Source: 2, Target: 9, Kind: document.SplitSibling},
		{Source: 5, Target: 9, Kind: document.SplitSibling},
	}
	if diff := cmp.Diff(want, edges); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitSiblings_SingleSegmentHasNoEdges(t *testing.T) {
	if edges := SplitSiblings([]document.ID{7}); edges != nil {
		t.Errorf("expected nil edges, got %v", edges)
	}
	if edges := SplitSiblings(nil); edges != nil {
		t.Errorf("expected nil edges, got %v", edges)
	}
}

func TestNeighbors_Symmetric(t *testing.T) {
	edges := []document.RelationEdge{
		{Source: 1, Target: 3, Kind: document.SplitSibling},
		{Source: 1, Target: 2, Kind: document.SplitSibling},
	}
	got := Neighbors(edges)

	want := map[document.ID][]document.ID{
		1: {2, 3},
		2: {1},
		3: {1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("adjacency mismatch (-want +got):\n%s", diff)
	}
}

func TestNeighbors_DeduplicatesAndDropsSelfEdges(t *testing.T) {
	edges := []document.RelationEdge{
		{Source: 1, Target: 2, Kind: document.SplitSibling},
		{Source: 2, Target: 1, Kind: document.SplitSibling},
		{Source: 1, Target: 1, Kind: document.SplitSibling},
	}
	got := Neighbors(edges)

	want := map[document.ID][]document.ID{
		1: {2},
		2: {1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("adjacency mismatch (-want +got):\n%s", diff)
	}
}
