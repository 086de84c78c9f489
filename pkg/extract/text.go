// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package extract

func init() {
	Formats.Register(extractPlain, ".txt", ".text", ".md", ".markdown", ".log")
}

// extractPlain returns the content as-is (plain text pass-through).
func extractPlain(content []byte) (*Result, error) {
	return &Result{Text: string(content), kind: kindPlain}, nil
}
