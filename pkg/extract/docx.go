// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"strings"
)

func init() {
	Formats.Register(extractDOCX, ".docx")
}

// extractDOCX reads a Word archive and returns the body text of
// word/document.xml, one line per paragraph, table rows as " | "-joined
// cells. Word documents have no fixed pagination in their XML, so the
// result carries no sections.
func extractDOCX(content []byte) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			body = f
			break
		}
	}
	if body == nil {
		return nil, errors.New("not a Word document")
	}

	rc, err := body.Open()
	if err != nil {
		return nil, fmt.Errorf("open document body: %w", err)
	}
	defer rc.Close()

	lines, err := collectLines(rc)
	if err != nil {
		return nil, err
	}
	return &Result{Text: strings.Join(lines, "\n")}, nil
}
