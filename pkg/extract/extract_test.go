// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/docsift/docsift/pkg/extract"
	"github.com/docsift/docsift/pkg/extract/extracttest"
)

func newService() *extract.Service {
	return extract.NewService(nil, nil)
}

func TestExtract(t *testing.T) {
	svc := newService()
	tests := []struct {
		name     string
		filename string
		content  []byte
		contains string // substring the result should contain
		wantErr  bool
	}{
		{
			name:     "plain text passthrough",
			filename: "readme.txt",
			content:  []byte("Hello, world!"),
			contains: "Hello, world!",
		},
		{
			name:     "markdown passthrough",
			filename: "notes.md",
			content:  []byte("# Title\nbody"),
			contains: "# Title",
		},
		{
			name:     "unknown extension with readable text",
			filename: "data.xyz",
			content:  []byte("raw content"),
			contains: "raw content",
		},
		{
			name:     "HTML extraction",
			filename: "page.html",
			content:  []byte("<html><body><p>Hello</p><script>var x=1;</script><p>World</p></body></html>"),
			contains: "Hello",
		},
		{
			name:     "HTML skips script",
			filename: "page.htm",
			content:  []byte("<html><script>alert('x')</script><body>visible</body></html>"),
			contains: "visible",
		},
		{
			name:     "CSV extraction",
			filename: "data.csv",
			content:  []byte("name,age,city\nAlice,30,NYC\nBob,25,LA"),
			contains: "Alice",
		},
		{
			name:     "TSV extraction",
			filename: "data.tsv",
			content:  []byte("name\tage\nBob\t25"),
			contains: "Bob",
		},
		{
			name:     "JSON pretty-print",
			filename: "config.json",
			content:  []byte(`{"key":"value","num":42}`),
			contains: "\"key\": \"value\"",
		},
		{
			name:     "JSONL extraction",
			filename: "logs.jsonl",
			content:  []byte("{\"a\":1}\n{\"b\":2}"),
			contains: "\"a\": 1",
		},
		{
			name:     "invalid JSON falls back to raw",
			filename: "bad.json",
			content:  []byte("not json at all"),
			contains: "not json at all",
		},
		{
			name:     "binary with unknown extension rejected",
			filename: "blob.bin",
			content:  []byte{0x00, 0xff, 0xfe, 0x00, 0x01},
			wantErr:  true,
		},
		{
			name:     "corrupt pptx rejected",
			filename: "deck.pptx",
			content:  []byte("definitely not a zip archive"),
			wantErr:  true,
		},
		{
			name:     "corrupt docx rejected",
			filename: "report.docx",
			content:  []byte("definitely not a zip archive"),
			wantErr:  true,
		},
		{
			name:     "corrupt pdf rejected",
			filename: "paper.pdf",
			content:  []byte("%PDF-1.4 truncated garbage"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := svc.Extract(context.Background(), tt.filename, tt.content, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Extract() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if err.Error() == "" {
					t.Error("error message is empty")
				}
				return
			}
			if !strings.Contains(doc.Text, tt.contains) {
				t.Errorf("Extract() = %q, want substring %q", doc.Text, tt.contains)
			}
		})
	}
}

func TestExtractEmptyContent(t *testing.T) {
	_, err := newService().Extract(context.Background(), "deck.pptx", nil, "")
	if !errors.Is(err, extract.ErrEmptyDocument) {
		t.Fatalf("error = %v, want ErrEmptyDocument", err)
	}
}

func TestExtractUnsupportedBinary(t *testing.T) {
	_, err := newService().Extract(context.Background(), "firmware.img", []byte{0x7f, 0x45, 0x4c, 0x46, 0x00}, "")
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractParseErrorType(t *testing.T) {
	_, err := newService().Extract(context.Background(), "deck.pptx", []byte("garbage"), "")
	var perr *extract.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if perr.Ext != ".pptx" {
		t.Errorf("ParseError.Ext = %q, want .pptx", perr.Ext)
	}
}

func TestExtractLegacyWithoutConverter(t *testing.T) {
	_, err := newService().Extract(context.Background(), "old.ppt", []byte("legacy bytes"), "")
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}
	if !strings.Contains(err.Error(), "converter") {
		t.Errorf("error %q should mention the converter fallback", err)
	}
}

func TestExtractUnknownRender(t *testing.T) {
	_, err := newService().Extract(context.Background(), "a.txt", []byte("x"), "yaml")
	if err == nil || !strings.Contains(err.Error(), "unknown render") {
		t.Fatalf("error = %v, want unknown render", err)
	}
}

func TestExtractIdempotent(t *testing.T) {
	content := extracttest.BuildPPTX(t,
		extracttest.Slide{Paragraphs: []string{"First slide", "with two lines"}},
		extracttest.Slide{Paragraphs: []string{"Second slide"}},
	)
	svc := newService()

	first, err := svc.Extract(context.Background(), "deck.pptx", content, "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Extract(context.Background(), "deck.pptx", bytes.Clone(content), "")
	if err != nil {
		t.Fatal(err)
	}
	if first.Text != second.Text {
		t.Errorf("repeat extraction differs:\nfirst:  %q\nsecond: %q", first.Text, second.Text)
	}
	if len(first.Sections) != len(second.Sections) {
		t.Fatalf("section counts differ: %d vs %d", len(first.Sections), len(second.Sections))
	}
	for i := range first.Sections {
		if first.Sections[i] != second.Sections[i] {
			t.Errorf("section %d differs: %+v vs %+v", i, first.Sections[i], second.Sections[i])
		}
	}
}

func TestExtractConcurrent(t *testing.T) {
	svc := newService()
	const workers = 8

	docs := make([][]byte, workers)
	markers := make([]string, workers)
	for i := range docs {
		markers[i] = strings.Repeat(string(rune('A'+i)), 12)
		docs[i] = extracttest.BuildPPTX(t, extracttest.Slide{Paragraphs: []string{"document " + markers[i]}})
	}

	var wg sync.WaitGroup
	errs := make([]error, workers)
	texts := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := svc.Extract(context.Background(), "deck.pptx", docs[i], "")
			if err != nil {
				errs[i] = err
				return
			}
			texts[i] = doc.Text
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if !strings.Contains(texts[i], markers[i]) {
			t.Errorf("worker %d missing its own marker %q: %q", i, markers[i], texts[i])
		}
		for j := 0; j < workers; j++ {
			if j != i && strings.Contains(texts[i], markers[j]) {
				t.Errorf("worker %d leaked marker %q from worker %d", i, markers[j], j)
			}
		}
	}
}

func TestConverterExtensions(t *testing.T) {
	exts := extract.ConverterExtensions()
	if len(exts) == 0 {
		t.Fatal("no converter extensions listed")
	}
	for i := 1; i < len(exts); i++ {
		if exts[i-1] >= exts[i] {
			t.Errorf("extensions not sorted: %v", exts)
		}
	}
	found := false
	for _, ext := range exts {
		if ext == ".ppt" {
			found = true
		}
	}
	if !found {
		t.Errorf(".ppt missing from converter extensions: %v", exts)
	}
}
