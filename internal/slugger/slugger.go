// Package slugger derives canonical, URL-safe document identifiers and
// enforces their uniqueness within one ingestion run.
package slugger

import (
	"fmt"
	"sync"

	slug "github.com/goliatone/go-slug"

	"github.com/pressroom-io/pressroom/internal/document"
)

// CollisionError reports a slug candidate that is already owned by an
// earlier-ingested document. Collisions are never silently disambiguated;
// an auto-suffixed rename would break external links.
type CollisionError struct {
	Candidate  string
	FirstOwner document.ID
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("slug %q already taken by document #%d", e.Candidate, e.FirstOwner)
}

// Normalize lowercases a value and collapses whitespace and punctuation
// runs to single hyphens.
func Normalize(v string) (string, error) {
	out, err := slug.Normalize(v)
	if err != nil {
		return "", fmt.Errorf("normalize slug %q: %w", v, err)
	}
	return out, nil
}

// Candidate derives the slug candidate for a header: the explicit slug when
// declared, otherwise date-prefixed normalized title, otherwise normalized
// title alone.
func Candidate(h document.Header) (string, error) {
	if h.Slug != "" {
		return Normalize(h.Slug)
	}

	title, err := Normalize(h.Title)
	if err != nil {
		return "", err
	}
	if title == "" {
		return "", fmt.Errorf("title %q normalizes to an empty slug", h.Title)
	}

	if h.PublishedAt != nil {
		return fmt.Sprintf("%s-%s", h.PublishedAt.Format("2006-01-02"), title), nil
	}
	return title, nil
}

// Registry tracks claimed slugs for one ingestion run. It is the only
// shared mutable state during parallel ingestion and is safe for
// concurrent use; registration is one attempt at a time.
type Registry struct {
	mu     sync.Mutex
	owners map[string]document.ID
}

func NewRegistry() *Registry {
	return &Registry{owners: make(map[string]document.ID)}
}

// Claim registers a slug for the given document. The first claimant wins;
// every later claim for the same slug fails with a CollisionError naming
// the first owner.
func (r *Registry) Claim(s string, id document.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, taken := r.owners[s]; taken {
		return &CollisionError{Candidate: s, FirstOwner: owner}
	}
	r.owners[s] = id
	return nil
}

// Owner reports which document holds a slug, if any.
func (r *Registry) Owner(s string) (document.ID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.owners[s]
	return id, ok
}

// Len reports how many slugs are registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.owners)
}
