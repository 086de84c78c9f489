// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract_test

import (
	"context"
	"strings"
	"testing"

	"github.com/docsift/docsift/pkg/extract/extracttest"
)

func TestExtractDOCX(t *testing.T) {
	content := extracttest.BuildDOCX(t,
		"Project status report",
		"Everything is on schedule.",
	)

	doc, err := newService().Extract(context.Background(), "report.docx", content, "")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	want := "Project status report\nEverything is on schedule."
	if doc.Text != want {
		t.Errorf("text = %q, want %q", doc.Text, want)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("docx should carry no sections, got %d", len(doc.Sections))
	}
}

func TestExtractDOCXWithTable(t *testing.T) {
	files := map[string]string{
		"word/document.xml": `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			`<w:p><w:r><w:t>Inventory</w:t></w:r></w:p>` +
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Item</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Count</w:t></w:r></w:p></w:tc></w:tr>` +
			`<w:tr><w:tc><w:p><w:r><w:t>Bolts</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>42</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
			`</w:body></w:document>`,
	}
	content := extracttest.BuildZip(t, files)

	doc, err := newService().Extract(context.Background(), "report.docx", content, "")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	for _, want := range []string{"Inventory", "Item | Count", "Bolts | 42"} {
		if !strings.Contains(doc.Text, want) {
			t.Errorf("text %q missing %q", doc.Text, want)
		}
	}
}

func TestExtractDOCXMissingBody(t *testing.T) {
	content := extracttest.BuildZip(t, map[string]string{
		"word/styles.xml": `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`,
	})

	_, err := newService().Extract(context.Background(), "report.docx", content, "")
	if err == nil || !strings.Contains(err.Error(), "not a Word document") {
		t.Fatalf("error = %v, want 'not a Word document'", err)
	}
}
