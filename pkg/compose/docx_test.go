// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package compose_test

import (
	"context"
	"strings"
	"testing"

	"github.com/docsift/docsift/pkg/compose"
	"github.com/docsift/docsift/pkg/core/schema"
	"github.com/docsift/docsift/pkg/extract"
)

// roundTrip composes a document and runs it back through the Word
// extractor.
func roundTrip(t *testing.T, req *schema.ComposeRequest) string {
	t.Helper()
	content, err := compose.DOCX(req)
	if err != nil {
		t.Fatalf("DOCX() error: %v", err)
	}
	doc, err := extract.NewService(nil, nil).Extract(context.Background(), "generated.docx", content, "")
	if err != nil {
		t.Fatalf("extracting composed document: %v", err)
	}
	return doc.Text
}

func TestDOCXRoundTrip(t *testing.T) {
	req := &schema.ComposeRequest{
		Title: "Launch Plan",
		Sections: []schema.ComposeSection{
			{Type: "heading", Content: "Timeline"},
			{Type: "paragraph", Content: "We ship in March."},
			{Type: "bullet", Items: []string{"Freeze features", "Cut the branch"}},
			{Type: "numbered", Content: "Tag the release"},
			{Type: "quote", Content: "Ship early, ship often."},
			{Type: "table", Rows: [][]string{{"Phase", "Owner"}, {"Beta", "Ana"}}},
			{Type: "summary", Content: "On track overall."},
			{Type: "questions", Items: []string{"What could slip?"}},
		},
	}

	text := roundTrip(t, req)
	for _, want := range []string{
		"Launch Plan",
		"Timeline",
		"We ship in March.",
		"Freeze features",
		"Cut the branch",
		"Tag the release",
		"Ship early, ship often.",
		"Phase | Owner",
		"Beta | Ana",
		"On track overall.",
		"What could slip?",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("round-tripped text missing %q:\n%s", want, text)
		}
	}
}

func TestDOCXInlineMarkup(t *testing.T) {
	req := &schema.ComposeRequest{
		Sections: []schema.ComposeSection{
			{Type: "paragraph", Content: "Mostly plain with **bold words** and __marked words__ inside."},
		},
	}

	text := roundTrip(t, req)
	if !strings.Contains(text, "Mostly plain with bold words and marked words inside.") {
		t.Errorf("inline markup should decode to plain text:\n%s", text)
	}
	if strings.Contains(text, "**") || strings.Contains(text, "__") {
		t.Errorf("markup delimiters leaked into document text:\n%s", text)
	}
}

func TestDOCXDefaultTitle(t *testing.T) {
	req := &schema.ComposeRequest{
		Sections: []schema.ComposeSection{{Type: "paragraph", Content: "body"}},
	}
	text := roundTrip(t, req)
	if !strings.Contains(text, "Document") {
		t.Errorf("missing default title:\n%s", text)
	}
}

func TestDOCXUnknownTypeFallsBack(t *testing.T) {
	req := &schema.ComposeRequest{
		Sections: []schema.ComposeSection{{Type: "banana", Content: "odd but kept"}},
	}
	text := roundTrip(t, req)
	if !strings.Contains(text, "odd but kept") {
		t.Errorf("unknown section type should render as a paragraph:\n%s", text)
	}
}

func TestDOCXImagePlaceholder(t *testing.T) {
	req := &schema.ComposeRequest{
		Sections: []schema.ComposeSection{{Type: "image", Content: "architecture diagram"}},
	}
	text := roundTrip(t, req)
	if !strings.Contains(text, "Image Placeholder: architecture diagram") {
		t.Errorf("missing image placeholder:\n%s", text)
	}
}

func TestDOCXTableWithoutRows(t *testing.T) {
	req := &schema.ComposeRequest{
		Sections: []schema.ComposeSection{{Type: "table", Content: "not rows"}},
	}
	text := roundTrip(t, req)
	if !strings.Contains(text, "Table data not in expected format.") {
		t.Errorf("missing malformed-table notice:\n%s", text)
	}
}

func TestDOCXEscapesMarkup(t *testing.T) {
	req := &schema.ComposeRequest{
		Sections: []schema.ComposeSection{{Type: "paragraph", Content: `5 < 6 & "quoted"`}},
	}
	text := roundTrip(t, req)
	if !strings.Contains(text, `5 < 6 & "quoted"`) {
		t.Errorf("special characters should survive the round trip:\n%s", text)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Launch Plan 2026", "Launch_Plan_2026.docx"},
		{"", "document.docx"},
		{"???", "document.docx"},
		{"  padded  ", "padded.docx"},
	}
	for _, tt := range tests {
		if got := compose.Filename(tt.title); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
