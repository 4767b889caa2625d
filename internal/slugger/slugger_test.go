package slugger

import (
	"errors"
	"testing"
	"time"

	"github.com/pressroom-io/pressroom/internal/document"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Already-Slugged", "already-slugged"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
		{"Punct!? Heavy: Title", "punct-heavy-title"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCandidate_ExplicitSlugWins(t *testing.T) {
	ts := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	h := document.Header{Title: "Ignored Title", Slug: "My Custom Slug", PublishedAt: &ts}
	got, err := Candidate(h)
	if err != nil {
		t.Fatal(err)
	}
	if got != "my-custom-slug" {
		t.Errorf("candidate = %q, want my-custom-slug", got)
	}
}

func TestCandidate_DateAndTitle(t *testing.T) {
	ts := time.Date(2020, 1, 2, 15, 4, 5, 0, time.UTC)
	h := document.Header{Title: "A Post", PublishedAt: &ts}
	got, err := Candidate(h)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2020-01-02-a-post" {
		t.Errorf("candidate = %q, want 2020-01-02-a-post", got)
	}
}

func TestCandidate_TitleOnly(t *testing.T) {
	got, err := Candidate(document.Header{Title: "Undated Piece"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "undated-piece" {
		t.Errorf("candidate = %q, want undated-piece", got)
	}
}

func TestRegistry_FirstClaimWins(t *testing.T) {
	r := NewRegistry()
	if err := r.Claim("a-post", 0); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	err := r.Claim("a-post", 1)
	var coll *CollisionError
	if !errors.As(err, &coll) {
		t.Fatalf("expected CollisionError, got %v", err)
	}
	if coll.Candidate != "a-post" || coll.FirstOwner != 0 {
		t.Errorf("collision = %+v", coll)
	}

	owner, ok := r.Owner("a-post")
	if !ok || owner != 0 {
		t.Errorf("owner = %d/%v, want 0/true", owner, ok)
	}
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1", r.Len())
	}
}

func TestRegistry_DistinctSlugsCoexist(t *testing.T) {
	r := NewRegistry()
	for i, s := range []string{"one", "two", "three"} {
		if err := r.Claim(s, document.ID(i)); err != nil {
			t.Fatalf("claim %q: %v", s, err)
		}
	}
	if r.Len() != 3 {
		t.Errorf("len = %d, want 3", r.Len())
	}
}
