// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

func init() {
	Formats.Register(extractPPTX, ".pptx")
}

var slidePartRe = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractPPTX reads a PowerPoint archive and returns one section per
// slide, in slide order. Slide text is the trimmed non-empty paragraphs
// of every shape, table rows as " | "-joined cells.
func extractPPTX(content []byte) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	type slidePart struct {
		num  int
		file *zip.File
	}
	var (
		parts       []slidePart
		hasManifest bool
	)
	for _, f := range zr.File {
		if f.Name == "ppt/presentation.xml" {
			hasManifest = true
		}
		m := slidePartRe.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		parts = append(parts, slidePart{num: num, file: f})
	}
	if !hasManifest {
		return nil, errors.New("not a PowerPoint document")
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].num < parts[j].num })

	doc := &Result{Label: "Slide"}
	for i, part := range parts {
		rc, err := part.file.Open()
		if err != nil {
			return nil, fmt.Errorf("open slide %d: %w", part.num, err)
		}
		lines, err := collectLines(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", part.num, err)
		}
		doc.Sections = append(doc.Sections, Section{
			Index: i + 1,
			Title: "Slide " + strconv.Itoa(i+1),
			Text:  strings.Join(lines, "\n"),
		})
	}

	texts := make([]string, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		if sec.Text != "" {
			texts = append(texts, sec.Text)
		}
	}
	doc.Text = strings.Join(texts, "\n")
	return doc, nil
}
