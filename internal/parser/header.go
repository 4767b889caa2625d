package parser

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pressroom-io/pressroom/internal/document"
)

// Recognized header keys. Everything else is preserved verbatim in the
// legacy bag.
const (
	keyTitle         = "title"
	keyPublishedAt   = "published_at"
	keyAuthor        = "author"
	keyTags          = "tags"
	keySlug          = "slug"
	keyExcerptMarker = "excerpt_marker"
)

// Accepted published_at layouts. RFC 3339 with an explicit offset is
// canonical; naive date-times and bare dates default to UTC.
var timeLayouts = []struct {
	layout string
	utc    bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05 -0700", false},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02", true},
}

// decodeHeader turns the YAML between the header delimiters into a typed
// Header. The source is decoded into a yaml.Node rather than a map so that
// duplicate keys are observable and unknown values survive verbatim.
func decodeHeader(origin string, src []byte) (document.Header, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return document.Header{}, &MalformedHeaderError{Origin: origin, Reason: fmt.Sprintf("invalid yaml: %v", err)}
	}

	var mapping *yaml.Node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		mapping = root.Content[0]
	}

	if mapping == nil {
		// Empty header block: the required title is necessarily missing.
		return document.Header{}, &FieldValueError{Origin: origin, Key: keyTitle, Reason: "required and must be non-empty"}
	}
	if mapping.Kind != yaml.MappingNode {
		return document.Header{}, &MalformedHeaderError{Origin: origin, Reason: "header is not a key/value mapping"}
	}

	hdr := document.Header{Legacy: map[string]string{}}
	seen := map[string]bool{}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valNode := mapping.Content[i], mapping.Content[i+1]
		key := keyNode.Value
		if seen[key] {
			return document.Header{}, &DuplicateKeyError{Origin: origin, Key: key}
		}
		seen[key] = true

		switch key {
		case keyTitle:
			v, err := scalarValue(origin, key, valNode)
			if err != nil {
				return document.Header{}, err
			}
			hdr.Title = strings.TrimSpace(v)
		case keyPublishedAt:
			v, err := scalarValue(origin, key, valNode)
			if err != nil {
				return document.Header{}, err
			}
			ts, err := parseTimestamp(strings.TrimSpace(v))
			if err != nil {
				return document.Header{}, &FieldValueError{
					Origin: origin, Key: key, Value: v,
					Reason: "expected an RFC 3339 date-time",
				}
			}
			hdr.PublishedAt = &ts
		case keyAuthor:
			v, err := scalarValue(origin, key, valNode)
			if err != nil {
				return document.Header{}, err
			}
			hdr.Author = strings.TrimSpace(v)
		case keyTags:
			tags, err := tagValues(origin, valNode)
			if err != nil {
				return document.Header{}, err
			}
			hdr.Tags = tags
		case keySlug:
			v, err := scalarValue(origin, key, valNode)
			if err != nil {
				return document.Header{}, err
			}
			hdr.Slug = strings.TrimSpace(v)
		case keyExcerptMarker:
			v, err := scalarValue(origin, key, valNode)
			if err != nil {
				return document.Header{}, err
			}
			hdr.ExcerptMarker = v
		default:
			hdr.Legacy[key] = verbatimValue(valNode)
		}
	}

	if hdr.Title == "" {
		return document.Header{}, &FieldValueError{Origin: origin, Key: keyTitle, Reason: "required and must be non-empty"}
	}
	return hdr, nil
}

func scalarValue(origin, key string, n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", &FieldValueError{
			Origin: origin, Key: key, Value: verbatimValue(n),
			Reason: "expected a scalar value",
		}
	}
	return n.Value, nil
}

// tagValues accepts a YAML sequence (block or flow) or a comma-joined
// scalar, and returns the tags deduplicated case-sensitively with their
// first-seen order preserved.
func tagValues(origin string, n *yaml.Node) ([]string, error) {
	var raw []string
	switch n.Kind {
	case yaml.SequenceNode:
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, &FieldValueError{
					Origin: origin, Key: keyTags, Value: verbatimValue(item),
					Reason: "tag entries must be strings",
				}
			}
			raw = append(raw, item.Value)
		}
	case yaml.ScalarNode:
		raw = strings.Split(n.Value, ",")
	default:
		return nil, &FieldValueError{
			Origin: origin, Key: keyTags, Value: verbatimValue(n),
			Reason: "expected a sequence or comma-joined string",
		}
	}

	var tags []string
	seen := map[string]bool{}
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags, nil
}

// verbatimValue renders a node back to its source-equivalent string form.
// Scalars come back exactly as written; structured values are re-serialized
// as YAML so legacy metadata survives round trips uninterpreted.
func verbatimValue(n *yaml.Node) string {
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	out, err := yaml.Marshal(n)
	if err != nil {
		return n.Value
	}
	return strings.TrimRight(string(out), "\n")
}

func parseTimestamp(v string) (time.Time, error) {
	var lastErr error
	for _, l := range timeLayouts {
		var ts time.Time
		var err error
		if l.utc {
			ts, err = time.ParseInLocation(l.layout, v, time.UTC)
		} else {
			ts, err = time.Parse(l.layout, v)
		}
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
