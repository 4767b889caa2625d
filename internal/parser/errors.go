package parser

import "fmt"

// MalformedHeaderError reports a header block that could not be delimited or
// decoded at all: missing start or end marker, or non-mapping YAML content.
type MalformedHeaderError struct {
	Origin string
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("%s: malformed header: %s", e.Origin, e.Reason)
}

// DuplicateKeyError reports a header key that appears more than once. The
// last-seen value is never silently preferred.
type DuplicateKeyError struct {
	Origin string
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: duplicate header key %q", e.Origin, e.Key)
}

// FieldValueError reports a recognized header field whose raw value could
// not be coerced to its declared type, or a required field that is missing.
type FieldValueError struct {
	Origin string
	Key    string
	Value  string
	Reason string
}

func (e *FieldValueError) Error() string {
	return fmt.Sprintf("%s: invalid value for %q (%q): %s", e.Origin, e.Key, e.Value, e.Reason)
}

// OrphanSegmentError reports a body segment, produced by a split marker,
// that carries no header of its own. The segment inherits no metadata and
// is rejected; its siblings are unaffected.
type OrphanSegmentError struct {
	Origin  string
	Segment int
	Err     error
}

func (e *OrphanSegmentError) Error() string {
	return fmt.Sprintf("%s: segment %d has no usable header: %v", e.Origin, e.Segment, e.Err)
}

func (e *OrphanSegmentError) Unwrap() error { return e.Err }
