// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"bytes"
	"encoding/xml"
	"regexp"
	"strings"
)

// run is one styled span of text inside a paragraph.
type run struct {
	text      string
	bold      bool
	highlight bool
	italic    bool
}

// inlineRe matches **bold** and __highlight__ spans.
var inlineRe = regexp.MustCompile(`\*\*.*?\*\*|__.*?__`)

// inlineRuns splits content into styled runs on the inline markers.
func inlineRuns(content string) []run {
	var runs []run
	last := 0
	for _, loc := range inlineRe.FindAllStringIndex(content, -1) {
		if loc[0] > last {
			runs = append(runs, run{text: content[last:loc[0]]})
		}
		tok := content[loc[0]:loc[1]]
		inner := tok[2 : len(tok)-2]
		if strings.HasPrefix(tok, "**") {
			runs = append(runs, run{text: inner, bold: true})
		} else {
			runs = append(runs, run{text: inner, highlight: true})
		}
		last = loc[1]
	}
	if last < len(content) {
		runs = append(runs, run{text: content[last:]})
	}
	if len(runs) == 0 {
		runs = append(runs, run{})
	}
	return runs
}

func (r run) xml() string {
	var sb strings.Builder
	sb.WriteString("<w:r>")
	if r.bold || r.highlight || r.italic {
		sb.WriteString("<w:rPr>")
		if r.bold {
			sb.WriteString("<w:b/>")
		}
		if r.italic {
			sb.WriteString("<w:i/>")
		}
		if r.highlight {
			sb.WriteString(`<w:highlight w:val="yellow"/>`)
		}
		sb.WriteString("</w:rPr>")
	}
	sb.WriteString(`<w:t xml:space="preserve">`)
	sb.WriteString(escape(r.text))
	sb.WriteString("</w:t></w:r>")
	return sb.String()
}

func escape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
