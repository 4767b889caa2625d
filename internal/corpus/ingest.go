package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/pressroom-io/pressroom/internal/document"
	"github.com/pressroom-io/pressroom/internal/excerpt"
	"github.com/pressroom-io/pressroom/internal/parser"
	"github.com/pressroom-io/pressroom/internal/relation"
	"github.com/pressroom-io/pressroom/internal/slugger"
)

// Warning reports a document or segment that was excluded from the model,
// tied to its origin so operators can fix the source without a debugger.
type Warning struct {
	Origin  string
	Segment int
	Err     error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (segment %d): %v", w.Origin, w.Segment, w.Err)
}

// FatalError means the run produced no usable model: either nothing
// survived ingestion, or a slug collision occurred under the strict
// policy.
type FatalError struct {
	Reason string
	Err    error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ingestion failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("ingestion failed: %s", e.Reason)
}

func (e *FatalError) Unwrap() error { return e.Err }

// Options configures one ingestion run.
type Options struct {
	// Workers bounds the parse worker pool. Defaults to runtime.NumCPU().
	Workers int
	// StrictSlugs makes a slug collision fatal for the whole run. When
	// false the later-ingested document is dropped with a warning.
	StrictSlugs bool
	Logger      *slog.Logger
}

// Ingestor runs the full pipeline: parse, slug resolution, relation
// extraction, index build. Runs are independent; all mutable state is
// scoped to a single Ingest call.
type Ingestor struct {
	workers int
	strict  bool
	log     *slog.Logger
}

func NewIngestor(opts Options) *Ingestor {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Ingestor{workers: workers, strict: opts.StrictSlugs, log: log}
}

// Ingest processes the corpus in one forward pass and returns the model
// plus every warning gathered along the way. The model is only valid when
// the returned error is nil. Output is deterministic for a given input
// sequence regardless of worker count: parsing is parallel but pure, and
// everything order-sensitive happens in a single ordered pass afterwards.
func (in *Ingestor) Ingest(ctx context.Context, raws []document.RawDocument) (*Model, []Warning, error) {
	runID := uuid.NewString()
	log := in.log.With("run_id", runID)
	log.Info("ingesting corpus", "inputs", len(raws))

	parsed := in.parseAll(ctx, raws)
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	registry := slugger.NewRegistry()
	var (
		docs     []*document.Document
		edges    []document.RelationEdge
		warnings []Warning
		nextID   document.ID
	)

	for i, raw := range raws {
		var siblings []document.ID
		for _, seg := range parsed[i] {
			if seg.Err != nil {
				warnings = append(warnings, Warning{Origin: raw.Origin, Segment: seg.Index, Err: seg.Err})
				log.Warn("segment rejected", "origin", raw.Origin, "segment", seg.Index, "error", seg.Err)
				continue
			}

			candidate, err := slugger.Candidate(seg.Header)
			if err != nil {
				warnings = append(warnings, Warning{Origin: raw.Origin, Segment: seg.Index, Err: err})
				log.Warn("slug derivation failed", "origin", raw.Origin, "error", err)
				continue
			}

			if err := registry.Claim(candidate, nextID); err != nil {
				if in.strict {
					return nil, warnings, &FatalError{Reason: "slug collision", Err: err}
				}
				warnings = append(warnings, Warning{Origin: raw.Origin, Segment: seg.Index, Err: err})
				log.Warn("document dropped on slug collision", "origin", raw.Origin, "slug", candidate)
				continue
			}

			doc := &document.Document{
				ID:      nextID,
				Slug:    candidate,
				Header:  seg.Header,
				Body:    seg.Body,
				Excerpt: excerpt.FromBody(seg.Body, seg.Header.ExcerptMarker),
				Origin:  raw.Origin,
				Segment: seg.Index,
			}
			docs = append(docs, doc)
			siblings = append(siblings, nextID)
			nextID++
		}
		edges = append(edges, relation.SplitSiblings(siblings)...)
	}

	if len(docs) == 0 {
		return nil, warnings, &FatalError{Reason: "no valid documents in corpus"}
	}

	model := newModel(runID, docs, edges)
	log.Info("corpus ready", "documents", len(docs), "edges", len(edges), "warnings", len(warnings))
	return model, warnings, nil
}

// parseAll fans parsing out over the worker pool. Results land at their
// input's position so downstream passes see discovery order, never
// completion order.
func (in *Ingestor) parseAll(ctx context.Context, raws []document.RawDocument) [][]parser.Segment {
	results := make([][]parser.Segment, len(raws))
	if len(raws) == 0 {
		return results
	}

	workers := in.workers
	if workers > len(raws) {
		workers = len(raws)
	}

	queue := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					continue
				}
				results[idx] = parser.Parse(raws[idx])
			}
		}()
	}

feed:
	for idx := range raws {
		select {
		case queue <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(queue)
	wg.Wait()
	return results
}
