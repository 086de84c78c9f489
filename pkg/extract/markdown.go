// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/microcosm-cc/bluemonday"
)

func init() {
	Renders.Register(RenderFunc(renderText), RenderText)
	Renders.Register(RenderFunc(renderMarkdown), RenderMarkdown)
}

// Shared across requests; both are safe for concurrent use.
var (
	sanitizePolicy = bluemonday.UGCPolicy()
	mdConverter    = md.NewConverter("", true, nil)
)

// renderText returns the extractor's plain text unchanged.
func renderText(doc *Result) (string, error) {
	return doc.Text, nil
}

// renderMarkdown renders sectioned documents with "## Slide N" style
// headings. Only non-empty sections are emitted and they are numbered
// continuously. HTML input converts through sanitize-then-convert
// instead.
func renderMarkdown(doc *Result) (string, error) {
	if doc.kind == kindHTML && doc.source != nil {
		return htmlMarkdown(doc.source)
	}
	if len(doc.Sections) == 0 {
		return doc.Text, nil
	}

	label := doc.Label
	if label == "" {
		label = "Section"
	}
	var parts []string
	n := 0
	for _, sec := range doc.Sections {
		body := strings.TrimSpace(sec.Text)
		if body == "" {
			continue
		}
		n++
		parts = append(parts, fmt.Sprintf("## %s %d\n\n%s", label, n, body))
	}
	return strings.Join(parts, "\n\n"), nil
}

// htmlMarkdown sanitizes untrusted markup, then converts what survives.
func htmlMarkdown(content []byte) (string, error) {
	clean := sanitizePolicy.SanitizeBytes(content)
	out, err := mdConverter.ConvertString(string(clean))
	if err != nil {
		return "", fmt.Errorf("convert HTML to markdown: %w", err)
	}
	return strings.TrimSpace(out), nil
}
