// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	Formats.Register(extractPDF, ".pdf")
}

// extractPDF returns one section per page. The input is probed with
// pdfcpu first so malformed files fail cleanly; a recover guard
// backstops the text reader.
func extractPDF(content []byte) (_ *Result, err error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if _, err := api.PageCount(bytes.NewReader(content), conf); err != nil {
		return nil, fmt.Errorf("validate PDF: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	doc := &Result{Label: "Page"}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		doc.Sections = append(doc.Sections, Section{
			Index: i,
			Title: "Page " + strconv.Itoa(i),
			Text:  strings.TrimSpace(text),
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
