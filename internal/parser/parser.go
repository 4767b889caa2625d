// Package parser turns raw document bytes into typed header/body segments.
// It performs no I/O; all failures are typed and carry the input's origin
// identifier for diagnostics.
package parser

import (
	"strings"

	"github.com/pressroom-io/pressroom/internal/document"
)

// headerDelimiter opens and closes the metadata block.
const headerDelimiter = "---"

// SplitMarker separates originally-distinct documents that were bundled
// into one raw input. It must appear on a line of its own. A body that
// needs to contain this exact line literally cannot be split automatically;
// such a corpus is invalid for ingestion rather than silently worked
// around.
const SplitMarker = "<!--pressroom-split-->"

// Segment is one document candidate recovered from a raw input. Err is
// non-nil when the segment was rejected; sibling segments stand on their
// own regardless.
type Segment struct {
	Index  int
	Header document.Header
	Body   string
	Err    error
}

// Parse splits a raw document into segments on SplitMarker and decodes
// each segment's header block. Parsing is deterministic: identical bytes
// always yield identical segments.
func Parse(raw document.RawDocument) []Segment {
	chunks := splitOnMarker(string(raw.Data))

	segments := make([]Segment, 0, len(chunks))
	for i, chunk := range chunks {
		seg := parseSegment(raw.Origin, i, chunk)
		segments = append(segments, seg)
	}
	return segments
}

// splitOnMarker cuts the input at every line holding exactly the split
// marker. With no marker present the whole input is the single chunk.
func splitOnMarker(src string) []string {
	lines := strings.Split(src, "\n")

	var chunks []string
	var current []string
	for _, line := range lines {
		if strings.TrimSpace(line) == SplitMarker {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = current[:0]
			continue
		}
		current = append(current, line)
	}
	chunks = append(chunks, strings.Join(current, "\n"))
	return chunks
}

// parseSegment locates the header block, decodes it, and returns the
// remainder as the body. Segments past the first that carry no header are
// orphans: they inherit no metadata and are rejected individually.
func parseSegment(origin string, index int, src string) Segment {
	seg := Segment{Index: index}

	lines := strings.Split(src, "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}

	if start >= len(lines) || strings.TrimSpace(lines[start]) != headerDelimiter {
		err := &MalformedHeaderError{Origin: origin, Reason: "missing header start marker"}
		if index > 0 {
			seg.Err = &OrphanSegmentError{Origin: origin, Segment: index, Err: err}
		} else {
			seg.Err = err
		}
		return seg
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == headerDelimiter {
			end = i
			break
		}
	}
	if end < 0 {
		seg.Err = &MalformedHeaderError{Origin: origin, Reason: "missing header end marker"}
		return seg
	}

	headerSrc := strings.Join(lines[start+1:end], "\n")
	hdr, err := decodeHeader(origin, []byte(headerSrc))
	if err != nil {
		seg.Err = err
		return seg
	}

	seg.Header = hdr
	seg.Body = strings.TrimSpace(strings.Join(lines[end+1:], "\n"))
	return seg
}
