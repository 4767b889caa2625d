// Package excerpt derives a plain-text excerpt from a document body. The
// cut point is the header-declared excerpt marker when one exists,
// otherwise the first paragraph. Markdown structure is flattened through
// the goldmark AST and inline HTML is stripped, so the result is safe to
// hand to feed builders and meta-description emitters untouched.
package excerpt

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// FromBody returns the plain-text excerpt of a Markdown body. marker is
// the document's excerpt boundary sentinel; when empty or absent from the
// body, the first paragraph is used instead. Pure and deterministic.
func FromBody(body, marker string) string {
	if marker != "" {
		if idx := strings.Index(body, marker); idx >= 0 {
			return Flatten(body[:idx])
		}
	}
	return firstParagraph(body)
}

// Flatten renders a Markdown fragment down to plain text: block contents
// joined by blank lines, inline markup and HTML removed.
func Flatten(src string) string {
	data := []byte(src)
	doc := goldmark.New().Parser().Parse(text.NewReader(data))

	var parts []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if t := blockText(n, data); t != "" {
			parts = append(parts, t)
		}
	}
	return stripHTML(strings.Join(parts, "\n\n"))
}

// firstParagraph flattens only the first non-heading block of the body.
func firstParagraph(body string) string {
	data := []byte(body)
	doc := goldmark.New().Parser().Parse(text.NewReader(data))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, isHeading := n.(*ast.Heading); isHeading {
			continue
		}
		if t := blockText(n, data); t != "" {
			return stripHTML(t)
		}
	}
	return ""
}

// blockText collects the raw text of a block node and its inline children.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	if buf.Len() == 0 {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				buf.Write(t.Value(src))
				if t.HardLineBreak() || t.SoftLineBreak() {
					buf.WriteByte('\n')
				}
			} else {
				buf.WriteString(blockText(c, src))
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// stripHTML drops tags and keeps text content. Bodies migrated from older
// systems routinely carry inline HTML.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var buf strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			buf.Write(tokenizer.Text())
		}
	}
	return strings.TrimSpace(buf.String())
}
