// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

// Package soffice shells out to LibreOffice for legacy document formats
// that have no native extractor. Every conversion runs in its own
// scratch directory which is removed before the call returns, whatever
// the outcome.
package soffice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/docsift/docsift/pkg/observability/logging"
)

// DefaultBinary is probed on PATH when no explicit path is configured.
const DefaultBinary = "soffice"

// ErrConvert reports a converter subprocess failure.
var ErrConvert = errors.New("document conversion failed")

// Converter invokes the soffice binary to turn legacy formats into
// plain text.
type Converter struct {
	binary  string
	timeout time.Duration
	tempDir string // parent for per-call scratch dirs, "" means the system default
	logger  *logging.Logger
}

// Find resolves the converter binary. An empty path probes PATH for
// DefaultBinary. The second return is false when no binary is available.
func Find(path string) (string, bool) {
	if path == "" {
		path = DefaultBinary
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", false
	}
	return resolved, true
}

// New returns a Converter running the given binary.
func New(binary string, timeout time.Duration, tempDir string, logger *logging.Logger) *Converter {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Converter{binary: binary, timeout: timeout, tempDir: tempDir, logger: logger}
}

// Convert writes content into a scratch directory, runs
// soffice --convert-to txt, and returns the produced text.
func (c *Converter) Convert(ctx context.Context, content []byte, ext string) (string, error) {
	dir, err := os.MkdirTemp(c.tempDir, "docsift-convert-")
	if err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	inPath := filepath.Join(dir, "input"+ext)
	if err := os.WriteFile(inPath, content, 0o600); err != nil {
		return "", fmt.Errorf("write converter input: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// A per-call profile keeps concurrent conversions from fighting
	// over the LibreOffice user installation lock.
	profile := "-env:UserInstallation=file://" + filepath.Join(dir, "profile")
	cmd := exec.CommandContext(ctx, c.binary, "--headless", profile,
		"--convert-to", "txt:Text", "--outdir", dir, inPath)
	// soffice forks a child that inherits the output pipes, so a kill on
	// timeout alone does not unblock Wait.
	cmd.WaitDelay = time.Second

	start := time.Now()
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: timed out after %s", ErrConvert, c.timeout)
		}
		c.logger.Error("converter failed", "ext", ext, "error", err,
			"output", strings.TrimSpace(string(out)))
		return "", fmt.Errorf("%w: %v", ErrConvert, err)
	}

	text, err := os.ReadFile(filepath.Join(dir, "input.txt"))
	if err != nil {
		c.logger.Error("converter produced no output", "ext", ext,
			"output", strings.TrimSpace(string(out)))
		return "", fmt.Errorf("%w: no text output produced", ErrConvert)
	}

	c.logger.Debug("converted document", "ext", ext, "bytes_in", len(content),
		"bytes_out", len(text), "duration", time.Since(start))
	return string(text), nil
}
