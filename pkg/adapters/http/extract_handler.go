// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/docsift/docsift/pkg/core/schema"
	"github.com/docsift/docsift/pkg/extract"
	"github.com/docsift/docsift/pkg/extract/soffice"
)

// multipartMemory caps the in-memory portion of a parsed upload; the
// remainder spools to disk and is removed before the handler returns.
const multipartMemory = 10 << 20

// handleExtract accepts a multipart upload and returns the extracted text.
func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := h.logger.With("request_id", RequestID(r.Context()))

	if r.ContentLength > h.cfg.MaxUploadBytes {
		h.writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		h.writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				log.Warn("Failed to remove multipart temp files", "error", err)
			}
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		// Browsers submit an empty value part named "file" when the
		// picker was left blank; those parts carry no filename and are
		// parsed as values rather than files.
		if _, ok := r.MultipartForm.Value["file"]; ok {
			h.writeError(w, http.StatusBadRequest, "no file selected")
			return
		}
		h.writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		log.Error("Failed to read uploaded file", "error", err, "filename", header.Filename)
		h.writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	render := r.FormValue("render")
	if render == "" {
		render = h.cfg.DefaultRender
	}
	if err := validation.Validate(render, validation.In(extract.RenderText, extract.RenderMarkdown)); err != nil {
		h.writeError(w, http.StatusBadRequest, "render must be one of: text, markdown")
		return
	}

	doc, err := h.extractor.Extract(r.Context(), header.Filename, content, render)
	if err != nil {
		status, message := extractErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Error("Extraction failed", "error", err, "filename", header.Filename)
		}
		h.writeError(w, status, message)
		return
	}

	log.Info("Extracted document",
		"filename", header.Filename,
		"content_type", header.Header.Get("Content-Type"),
		"bytes", len(content),
		"render", render,
		"sections", len(doc.Sections),
		"duration", time.Since(start),
	)

	resp := schema.ExtractResponse{
		Text:   doc.Text,
		Render: doc.Render,
	}
	for _, s := range doc.Sections {
		resp.Sections = append(resp.Sections, schema.Section{
			Index: s.Index,
			Title: s.Title,
			Text:  s.Text,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// extractErrorStatus maps extraction failures to HTTP statuses. Malformed
// uploads are the client's fault; converter trouble is ours.
func extractErrorStatus(err error) (int, string) {
	var parseErr *extract.ParseError
	switch {
	case errors.Is(err, extract.ErrEmptyDocument):
		return http.StatusBadRequest, "empty file"
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity, parseErr.Error()
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, soffice.ErrConvert):
		return http.StatusInternalServerError, "document conversion failed"
	default:
		return http.StatusInternalServerError, "extraction failed"
	}
}
