// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

// Package extracttest builds small synthetic OOXML documents in memory
// so extractor, adapter, and CLI tests can share realistic fixtures
// without binary files in the tree.
package extracttest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"testing"
)

// Slide is the content of one synthetic presentation slide.
type Slide struct {
	Paragraphs []string
	TableRows  [][]string
}

// BuildPPTX returns a minimal PowerPoint archive containing the given
// slides in order.
func BuildPPTX(t testing.TB, slides ...Slide) []byte {
	t.Helper()

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`,
		"ppt/presentation.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`,
	}
	for i, slide := range slides {
		files[fmt.Sprintf("ppt/slides/slide%d.xml", i+1)] = SlideXML(slide)
	}
	return BuildZip(t, files)
}

// BuildDOCX returns a minimal Word archive with the given paragraphs.
func BuildDOCX(t testing.TB, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.WriteString(escape(p))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body.String() + `</w:body></w:document>`,
	}
	return BuildZip(t, files)
}

// SlideXML renders one slide part. Exposed so tests can place slide
// parts under arbitrary archive names.
func SlideXML(slide Slide) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree>`)
	if len(slide.Paragraphs) > 0 {
		sb.WriteString(`<p:sp><p:txBody>`)
		for _, p := range slide.Paragraphs {
			sb.WriteString(`<a:p><a:r><a:t>`)
			sb.WriteString(escape(p))
			sb.WriteString(`</a:t></a:r></a:p>`)
		}
		sb.WriteString(`</p:txBody></p:sp>`)
	}
	if len(slide.TableRows) > 0 {
		sb.WriteString(`<p:graphicFrame><a:graphic><a:graphicData><a:tbl>`)
		for _, row := range slide.TableRows {
			sb.WriteString(`<a:tr>`)
			for _, cell := range row {
				sb.WriteString(`<a:tc><a:txBody><a:p><a:r><a:t>`)
				sb.WriteString(escape(cell))
				sb.WriteString(`</a:t></a:r></a:p></a:txBody></a:tc>`)
			}
			sb.WriteString(`</a:tr>`)
		}
		sb.WriteString(`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`)
	}
	sb.WriteString(`</p:spTree></p:cSld></p:sld>`)
	return sb.String()
}

// BuildZip assembles an in-memory archive from part name to content.
func BuildZip(t testing.TB, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

func escape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
