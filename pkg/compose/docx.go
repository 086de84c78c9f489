// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

// Package compose builds Word documents from structured section lists.
// The output is a minimal OOXML package: content types, relationships,
// a small style table, and word/document.xml assembled in memory.
package compose

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/docsift/docsift/pkg/core/schema"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

	packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`
)

// DOCX renders the request as a Word archive. The request is assumed to
// be validated.
func DOCX(req *schema.ComposeRequest) ([]byte, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Document"
	}

	var body strings.Builder
	body.WriteString(styledParagraph("Title", []run{{text: title}}))
	for _, sec := range req.Sections {
		writeSection(&body, sec)
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", document},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename derives an attachment name from the document title.
func Filename(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "document.docx"
	}
	var sb strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			sb.WriteRune('_')
		}
	}
	name := strings.Trim(sb.String(), "_")
	if name == "" {
		return "document.docx"
	}
	return name + ".docx"
}

func writeSection(body *strings.Builder, sec schema.ComposeSection) {
	content := sec.Content
	switch sec.Type {
	case "heading":
		body.WriteString(styledParagraph("Heading1", []run{{text: content}}))
	case "subheading":
		body.WriteString(styledParagraph("Heading2", []run{{text: content}}))
	case "bullet":
		writeList(body, "ListBullet", sec)
	case "numbered":
		writeList(body, "ListNumber", sec)
	case "quote":
		body.WriteString(styledParagraph("Quote", []run{{text: content}}))
	case "highlight":
		body.WriteString(styledParagraph("", []run{{text: content, highlight: true}}))
	case "bold":
		body.WriteString(styledParagraph("", inlineRuns(content)))
	case "image":
		body.WriteString(styledParagraph("", []run{{text: "Image Placeholder: " + content, italic: true}}))
	case "table":
		if len(sec.Rows) == 0 {
			body.WriteString(styledParagraph("", []run{{text: "Table data not in expected format."}}))
			return
		}
		body.WriteString(tableXML(sec.Rows))
	case "summary":
		// Summaries render bold to stand out from surrounding paragraphs.
		body.WriteString(styledParagraph("", []run{{text: content, bold: true}}))
	case "questions", "resources":
		writeList(body, "ListBullet", sec)
	default:
		// "paragraph" and unknown types render as plain paragraphs.
		body.WriteString(styledParagraph("", inlineRuns(content)))
	}
}

// writeList emits one styled paragraph per item, or a single one from
// Content when the section carries no item list.
func writeList(body *strings.Builder, style string, sec schema.ComposeSection) {
	if len(sec.Items) == 0 {
		body.WriteString(styledParagraph(style, inlineRuns(sec.Content)))
		return
	}
	for _, item := range sec.Items {
		body.WriteString(styledParagraph(style, inlineRuns(item)))
	}
}

func styledParagraph(style string, runs []run) string {
	var sb strings.Builder
	sb.WriteString("<w:p>")
	if style != "" {
		sb.WriteString(`<w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`)
	}
	for _, r := range runs {
		sb.WriteString(r.xml())
	}
	sb.WriteString("</w:p>")
	return sb.String()
}

func tableXML(rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/></w:tblPr>`)
	for i, row := range rows {
		sb.WriteString("<w:tr>")
		for _, cell := range row {
			sb.WriteString("<w:tc>")
			// Header row cells render bold.
			sb.WriteString(styledParagraph("", []run{{text: cell, bold: i == 0}}))
			sb.WriteString("</w:tc>")
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>")
	return sb.String()
}
