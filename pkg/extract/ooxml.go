// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// collectLines walks one OOXML part and returns its visible text, one
// line per paragraph or table row. PresentationML and WordprocessingML
// share the local element names that matter here: p (paragraph), t (text
// run), br, tab, and tbl/tr/tc for tables, so both formats use this
// walker. Table rows render as " | "-joined non-empty cells; rows with
// no text at all are dropped. WordprocessingML lets a cell hold another
// table, so per-table state lives on a stack; rows of a nested table
// render as lines inside the cell that contains it.
func collectLines(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	type tableFrame struct {
		cell   strings.Builder
		cells  []string
		inCell bool
	}

	var (
		lines  []string
		par    strings.Builder
		frames []*tableFrame // innermost table last
		inText bool
	)

	top := func() *tableFrame {
		if len(frames) == 0 {
			return nil
		}
		return frames[len(frames)-1]
	}

	flush := func() {
		for _, ln := range strings.Split(par.String(), "\n") {
			if ln = strings.TrimSpace(ln); ln != "" {
				lines = append(lines, ln)
			}
		}
		par.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tbl":
				frames = append(frames, &tableFrame{})
			case "tr":
				if f := top(); f != nil {
					f.cells = f.cells[:0]
				}
			case "tc":
				if f := top(); f != nil {
					f.inCell = true
					f.cell.Reset()
				}
			case "br":
				if f := top(); f != nil && f.inCell {
					f.cell.WriteString("\n")
				} else {
					par.WriteString("\n")
				}
			case "tab":
				if f := top(); f != nil && f.inCell {
					f.cell.WriteString("\t")
				} else {
					par.WriteString("\t")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if f := top(); f != nil && f.inCell {
					f.cell.WriteString("\n")
				} else {
					flush()
				}
			case "tc":
				if f := top(); f != nil {
					f.inCell = false
					f.cells = append(f.cells, strings.TrimSpace(f.cell.String()))
				}
			case "tr":
				f := top()
				if f == nil {
					break
				}
				var row []string
				for _, c := range f.cells {
					if c != "" {
						row = append(row, c)
					}
				}
				if len(row) == 0 {
					break
				}
				line := strings.Join(row, " | ")
				if len(frames) > 1 {
					if parent := frames[len(frames)-2]; parent.inCell {
						parent.cell.WriteString(line)
						parent.cell.WriteString("\n")
						break
					}
				}
				lines = append(lines, line)
			case "tbl":
				if len(frames) > 0 {
					frames = frames[:len(frames)-1]
				}
			}
		case xml.CharData:
			if inText {
				if f := top(); f != nil && f.inCell {
					f.cell.Write(t)
				} else {
					par.Write(t)
				}
			}
		}
	}

	flush()
	return lines, nil
}
