// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

func init() {
	Formats.Register(extractSeparated(','), ".csv")
	Formats.Register(extractSeparated('\t'), ".tsv")
}

// extractSeparated returns an extractor for delimiter-separated values.
// Each record is joined with tabs, records are separated by newlines.
func extractSeparated(comma rune) Func {
	return func(content []byte) (*Result, error) {
		reader := csv.NewReader(bytes.NewReader(content))
		reader.Comma = comma
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // allow variable field counts

		var sb strings.Builder
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				// If parsing fails, fall back to raw text
				return &Result{Text: string(content), kind: kindPlain}, nil
			}
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(strings.Join(record, "\t"))
		}

		return &Result{Text: sb.String(), kind: kindPlain}, nil
	}
}
