// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

// Package http is the HTTP adapter: routing, request parsing, and the
// JSON error envelope. All responses that are not document attachments
// are JSON; every non-2xx body is {"error": "..."}.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/docsift/docsift/pkg/core/schema"
	"github.com/docsift/docsift/pkg/extract"
	"github.com/docsift/docsift/pkg/observability/logging"
)

// Config carries the adapter's request handling limits and identity.
type Config struct {
	MaxUploadBytes int64
	DefaultRender  string
	Version        string
}

// Handler implements the HTTP adapter
type Handler struct {
	extractor *extract.Service
	logger    *logging.Logger
	cfg       Config
	mux       *http.ServeMux
	chain     http.Handler
}

// New creates a new HTTP handler
func New(extractor *extract.Service, cfg Config, logger *logging.Logger) *Handler {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 50 << 20
	}
	if cfg.DefaultRender == "" {
		cfg.DefaultRender = extract.RenderText
	}
	if logger == nil {
		logger = logging.Nop()
	}
	h := &Handler{
		extractor: extractor,
		logger:    logger,
		cfg:       cfg,
		mux:       http.NewServeMux(),
	}

	// Register routes
	h.mux.HandleFunc("GET /{$}", h.handleWelcome)
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /formats", h.handleFormats)
	h.mux.HandleFunc("GET /openapi.json", h.handleOpenAPI)
	h.mux.HandleFunc("GET /openapi.yaml", h.handleOpenAPIYAML)

	// Extraction API
	h.mux.HandleFunc("POST /extract", h.handleExtract)

	// Composition API
	h.mux.HandleFunc("POST /compose", h.handleCompose)

	h.chain = h.withRecovery(h.withRequestID(h.withAccessLog(h.mux)))
	return h
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.chain.ServeHTTP(w, r)
}

// handleWelcome serves the fixed status payload at the root path.
func (h *Handler) handleWelcome(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, schema.WelcomeResponse{
		Service: "docsift",
		Version: h.cfg.Version,
		Status:  "ok",
	})
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, schema.HealthResponse{Status: "healthy"})
}

// handleFormats lists registered input extensions and output renderings.
func (h *Handler) handleFormats(w http.ResponseWriter, r *http.Request) {
	resp := schema.FormatsResponse{
		Extensions: extract.Formats.Available(),
		Renders:    extract.Renders.Available(),
	}
	if h.extractor.ConverterEnabled() {
		resp.Converter = extract.ConverterExtensions()
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, schema.ErrorResponse{Error: message})
}
