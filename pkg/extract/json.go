// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"encoding/json"
	"strings"
)

func init() {
	Formats.Register(extractJSON, ".json")
	Formats.Register(extractJSONL, ".jsonl")
}

// extractJSON pretty-prints a JSON document for text extraction.
func extractJSON(content []byte) (*Result, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, content, "", "  "); err != nil {
		// If not valid JSON, return as-is
		return &Result{Text: string(content), kind: kindPlain}, nil
	}
	return &Result{Text: buf.String(), kind: kindPlain}, nil
}

// extractJSONL processes a JSONL file (one JSON object per line),
// pretty-printing each line and separating with blank lines.
func extractJSONL(content []byte) (*Result, error) {
	lines := strings.Split(string(content), "\n")
	var sb strings.Builder
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(line), "", "  "); err != nil {
			// Not a valid JSON line, include as-is
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(line)
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(buf.String())
	}
	return &Result{Text: sb.String(), kind: kindPlain}, nil
}
