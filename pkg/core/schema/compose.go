// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ComposeRequest describes a document to generate.
type ComposeRequest struct {
	Title    string           `json:"title,omitempty"` // Document heading, defaults to "Document"
	Sections []ComposeSection `json:"sections"`
}

// ComposeSection is one block of the composed document. Unrecognized
// types render as plain paragraphs.
type ComposeSection struct {
	Type    string     `json:"type"`              // heading, subheading, paragraph, bullet, numbered, quote, highlight, bold, table, image, summary, questions, resources
	Content string     `json:"content,omitempty"` // Body text; supports **bold** and __highlight__ spans
	Items   []string   `json:"items,omitempty"`   // List entries for bullet, numbered, questions, resources
	Rows    [][]string `json:"rows,omitempty"`    // For table sections; first row is the header
}

// Validate checks structural limits on the request.
func (r ComposeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.RuneLength(0, 300)),
		validation.Field(&r.Sections, validation.Required, validation.Length(1, 500)),
	)
}
