// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

// Package extract turns uploaded document bytes into plain text.
//
// Each supported filename extension registers an extractor in Formats;
// output renderings ("text", "markdown") register in Renders. Extraction
// is deterministic: the same bytes always produce the same text. Legacy
// binary formats without a native extractor route through an optional
// LibreOffice converter fallback.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/docsift/docsift/pkg/extract/soffice"
	"github.com/docsift/docsift/pkg/observability/logging"
	"github.com/docsift/docsift/pkg/provider"
)

// Sentinel errors the HTTP adapter maps to client-error statuses.
var (
	ErrEmptyDocument     = errors.New("empty document")
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// ParseError reports that a document claimed a supported format but its
// content could not be parsed.
type ParseError struct {
	Ext string
	Err error
}

func (e *ParseError) Error() string {
	ext := strings.TrimPrefix(e.Ext, ".")
	if ext == "" {
		ext = "document"
	}
	return fmt.Sprintf("parse %s: %v", ext, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Result is the outcome of one extraction.
type Result struct {
	Text     string    // document text in the requested rendering
	Sections []Section // per-slide / per-page segmentation, nil when the format has none
	Render   string    // rendering that produced Text
	Label    string    // section kind for headings, e.g. "Slide" or "Page"

	kind   string // internal format marker for renderers
	source []byte // original bytes, kept only where a renderer needs them
}

// Section is one natural segment of a document.
type Section struct {
	Index int    // 1-based position in the document
	Title string // e.g. "Slide 3"
	Text  string
}

// Internal format markers.
const (
	kindPlain = "plain"
	kindHTML  = "html"
)

// Rendering names accepted by Extract.
const (
	RenderText     = "text"
	RenderMarkdown = "markdown"
)

// Func extracts one document format.
type Func func(content []byte) (*Result, error)

// RenderFunc produces the final text for one rendering.
type RenderFunc func(doc *Result) (string, error)

// Formats maps lowercased filename extensions to extractors. Format files
// in this package register themselves at init.
var Formats = provider.NewRegistry[Func]("extract format")

// Renders maps rendering names to renderers.
var Renders = provider.NewRegistry[RenderFunc]("render")

// converterExts are legacy formats handled only via the converter fallback.
var converterExts = map[string]bool{
	".doc": true,
	".odp": true,
	".odt": true,
	".pps": true,
	".ppt": true,
	".rtf": true,
}

// ConverterExtensions returns the sorted list of extensions that route
// through the converter fallback.
func ConverterExtensions() []string {
	exts := make([]string, 0, len(converterExts))
	for ext := range converterExts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Service runs the extraction pipeline.
type Service struct {
	converter *soffice.Converter
	logger    *logging.Logger
}

// NewService creates a Service. converter may be nil to disable the
// legacy-format fallback.
func NewService(converter *soffice.Converter, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{converter: converter, logger: logger}
}

// ConverterEnabled reports whether the legacy-format fallback is available.
func (s *Service) ConverterEnabled() bool { return s.converter != nil }

// Extract dispatches on the filename extension and returns the document
// text in the requested rendering ("" means RenderText). The content is
// never written anywhere that survives the call.
func (s *Service) Extract(ctx context.Context, filename string, content []byte, render string) (*Result, error) {
	if len(content) == 0 {
		return nil, ErrEmptyDocument
	}
	if render == "" {
		render = RenderText
	}
	renderFn, err := Renders.Get(render)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	doc, err := s.extractByExt(ctx, ext, content)
	if err != nil {
		return nil, err
	}

	text, err := renderFn(doc)
	if err != nil {
		return nil, err
	}
	doc.Text = text
	doc.Render = render
	doc.source = nil
	return doc, nil
}

func (s *Service) extractByExt(ctx context.Context, ext string, content []byte) (*Result, error) {
	if fn, ok := Formats.Lookup(ext); ok {
		doc, err := fn(content)
		if err != nil {
			return nil, &ParseError{Ext: ext, Err: err}
		}
		return doc, nil
	}

	if converterExts[ext] {
		if s.converter == nil {
			return nil, fmt.Errorf("%w: %s needs the converter fallback, which is disabled", ErrUnsupportedFormat, ext)
		}
		s.logger.Debug("Routing to converter fallback", "ext", ext, "bytes", len(content))
		text, err := s.converter.Convert(ctx, content, ext)
		if err != nil {
			return nil, err
		}
		return &Result{Text: text, kind: kindPlain}, nil
	}

	// Unknown extension: accept readable text, reject binary blobs.
	if utf8.Valid(content) && !bytes.ContainsRune(content, 0) {
		return &Result{Text: string(content), kind: kindPlain}, nil
	}
	if ext == "" {
		return nil, fmt.Errorf("%w: binary content without a filename extension", ErrUnsupportedFormat)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}
