package excerpt

import (
	"strings"
	"testing"
)

func TestFromBody_ExplicitMarker(t *testing.T) {
	body := "Intro paragraph.\n\nStill intro.\n\n<!--more-->\n\nRest of the post."
	got := FromBody(body, "<!--more-->")
	if !strings.Contains(got, "Intro paragraph.") || !strings.Contains(got, "Still intro.") {
		t.Errorf("excerpt missing intro content: %q", got)
	}
	if strings.Contains(got, "Rest of the post.") {
		t.Errorf("excerpt leaked content past marker: %q", got)
	}
}

func TestFromBody_MarkerAbsentFallsBackToFirstParagraph(t *testing.T) {
	body := "Only paragraph one.\n\nParagraph two."
	got := FromBody(body, "<!--more-->")
	if got != "Only paragraph one." {
		t.Errorf("excerpt = %q, want first paragraph", got)
	}
}

func TestFromBody_FirstParagraphSkipsHeadings(t *testing.T) {
	body := "# A Heading\n\nThe real opener.\n\nMore text."
	got := FromBody(body, "")
	if got != "The real opener." {
		t.Errorf("excerpt = %q, want %q", got, "The real opener.")
	}
}

func TestFromBody_StripsInlineHTML(t *testing.T) {
	body := "Some <b>bold</b> legacy <a href=\"x\">link</a> text.\n\nMore."
	got := FromBody(body, "")
	if strings.Contains(got, "<") {
		t.Errorf("excerpt still contains markup: %q", got)
	}
	if !strings.Contains(got, "bold") || !strings.Contains(got, "link") {
		t.Errorf("excerpt lost text content: %q", got)
	}
}

func TestFromBody_EmptyBody(t *testing.T) {
	if got := FromBody("", ""); got != "" {
		t.Errorf("excerpt of empty body = %q, want empty", got)
	}
}

func TestFlatten_Deterministic(t *testing.T) {
	body := "Para one with *emphasis*.\n\n## Section\n\nPara two."
	first := Flatten(body)
	second := Flatten(body)
	if first != second {
		t.Errorf("flatten not deterministic: %q vs %q", first, second)
	}
}
