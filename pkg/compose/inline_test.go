// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"strings"
	"testing"
)

func TestInlineRuns(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []run
	}{
		{
			name:    "plain text",
			content: "nothing special",
			want:    []run{{text: "nothing special"}},
		},
		{
			name:    "bold span",
			content: "a **b** c",
			want:    []run{{text: "a "}, {text: "b", bold: true}, {text: " c"}},
		},
		{
			name:    "highlight span",
			content: "__note__ this",
			want:    []run{{text: "note", highlight: true}, {text: " this"}},
		},
		{
			name:    "mixed spans",
			content: "**b**__h__",
			want:    []run{{text: "b", bold: true}, {text: "h", highlight: true}},
		},
		{
			name:    "empty content yields one empty run",
			content: "",
			want:    []run{{}},
		},
		{
			name:    "unterminated marker stays literal",
			content: "half **open",
			want:    []run{{text: "half **open"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inlineRuns(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("runs = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("run %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRunXMLEscapes(t *testing.T) {
	out := run{text: "a <b> & c"}.xml()
	if strings.Contains(out, "<b>") {
		t.Errorf("unescaped angle brackets in %q", out)
	}
	if !strings.Contains(out, "&lt;b&gt;") {
		t.Errorf("expected escaped angle brackets in %q", out)
	}
	if !strings.Contains(out, "&amp;") {
		t.Errorf("expected escaped ampersand in %q", out)
	}
}
