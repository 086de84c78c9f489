// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// ExtractResponse is the payload returned for a successful extraction.
type ExtractResponse struct {
	Text     string    `json:"text"`               // Full extracted text in the requested rendering
	Sections []Section `json:"sections,omitempty"` // Per-slide / per-page segmentation, when the format has one
	Render   string    `json:"render,omitempty"`   // "text" or "markdown"
}

// Section is one natural segment of a document (a slide, a page).
type Section struct {
	Index int    `json:"index"`           // 1-based position in the document
	Title string `json:"title,omitempty"` // e.g. "Slide 3", "Page 1"
	Text  string `json:"text"`
}

// ErrorResponse is the envelope for every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"` // Human-readable, never empty
}

// WelcomeResponse is the fixed payload served at the root path.
type WelcomeResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Status  string `json:"status"` // Always "ok"
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"` // Always "healthy"
}

// FormatsResponse lists what the service can accept and produce.
type FormatsResponse struct {
	Extensions []string `json:"extensions"`          // Natively handled filename extensions, sorted
	Renders    []string `json:"renders"`             // Output renderings, sorted
	Converter  []string `json:"converter,omitempty"` // Extensions handled via the converter fallback, empty when disabled
}
