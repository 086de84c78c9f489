// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

// Command extract runs the extraction pipeline against local files,
// printing the extracted text to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docsift/docsift/pkg/extract"
	"github.com/docsift/docsift/pkg/extract/soffice"
	"github.com/docsift/docsift/pkg/observability/logging"
)

var (
	// Version is set via ldflags during build
	Version = "dev"
)

func main() {
	render := flag.String("render", extract.RenderText, "Output rendering: text or markdown")
	jobs := flag.Int("jobs", 4, "Number of files to process concurrently")
	sofficePath := flag.String("soffice", "", "Path to the LibreOffice binary (default: probe PATH)")
	timeout := flag.Duration("timeout", 2*time.Minute, "Per-file conversion timeout")
	version := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("Docsift Extract\nVersion: %s\n", Version)
		os.Exit(0)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: extract [flags] file...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *jobs < 1 {
		*jobs = 1
	}

	logger := logging.New(logging.Config{Level: "warn", Format: "text"})

	var converter *soffice.Converter
	if binary, ok := soffice.Find(*sofficePath); ok {
		converter = soffice.New(binary, *timeout, "", logger)
	}
	svc := extract.NewService(converter, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*jobs)

	// Results are collected per input so output order matches the
	// argument order regardless of which file finishes first.
	texts := make([]string, len(paths))
	errs := make([]error, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			content, err := os.ReadFile(path)
			if err != nil {
				errs[i] = err
				return nil
			}
			doc, err := svc.Extract(gctx, path, content, *render)
			if err != nil {
				errs[i] = err
				return nil
			}
			texts[i] = doc.Text
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	printed := 0
	for i, path := range paths {
		if errs[i] != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, errs[i])
			failed++
			continue
		}
		if len(paths) > 1 {
			if printed > 0 {
				fmt.Println()
			}
			fmt.Printf("==> %s <==\n", path)
		}
		fmt.Println(texts[i])
		printed++
	}
	if failed > 0 {
		os.Exit(1)
	}
}
