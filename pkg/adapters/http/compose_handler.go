// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/docsift/docsift/pkg/compose"
	"github.com/docsift/docsift/pkg/core/schema"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// handleCompose builds a .docx from structured sections and returns it
// as an attachment.
func (h *Handler) handleCompose(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := h.logger.With("request_id", RequestID(r.Context()))

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	var req schema.ComposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := compose.DOCX(&req)
	if err != nil {
		log.Error("Composition failed", "error", err, "title", req.Title)
		h.writeError(w, http.StatusInternalServerError, "document generation failed")
		return
	}

	filename := compose.Filename(req.Title)
	log.Info("Composed document",
		"filename", filename,
		"sections", len(req.Sections),
		"bytes", len(data),
		"duration", time.Since(start),
	)

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error("Failed to write document response", "error", err)
	}
}
