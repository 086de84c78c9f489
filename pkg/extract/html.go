// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

func init() {
	Formats.Register(extractHTML, ".html", ".htm")
}

// extractHTML strips tags and returns the visible text content. Script
// and style elements are skipped entirely. The raw markup is kept on the
// result for the markdown rendering.
func extractHTML(content []byte) (*Result, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		// Fall back to raw text if HTML is malformed
		return &Result{Text: string(content), kind: kindPlain}, nil
	}

	var sb strings.Builder
	textFromNode(doc, &sb)
	return &Result{
		Text:   strings.TrimSpace(sb.String()),
		kind:   kindHTML,
		source: content,
	}, nil
}

func textFromNode(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}

	if n.Type == html.TextNode {
		text := strings.TrimSpace(n.Data)
		if text != "" {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(text)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textFromNode(c, sb)
	}
}
