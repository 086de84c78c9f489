// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	httpAdapter "github.com/docsift/docsift/pkg/adapters/http"
	"github.com/docsift/docsift/pkg/core/config"
	"github.com/docsift/docsift/pkg/extract"
	"github.com/docsift/docsift/pkg/extract/soffice"
	"github.com/docsift/docsift/pkg/observability/logging"
)

var (
	// Version is set via ldflags during build
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	port := flag.Int("port", 0, "HTTP port to listen on (overrides config and PORT)")
	version := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	// Print version
	if *version {
		fmt.Printf("Docsift Server\nVersion: %s\nBuild Time: %s\n", Version, BuildTime)
		os.Exit(0)
	}

	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	// Load configuration; fall back to env + defaults when the file is
	// missing or unreadable. A bad environment variable is fatal.
	cfg, cfgErr := config.Load(*configPath)
	if cfgErr != nil {
		var envErr error
		cfg, envErr = config.Default()
		if envErr != nil {
			fmt.Fprintln(os.Stderr, "configuration error:", envErr)
			os.Exit(1)
		}
	}

	// Override port if specified
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Initialize logger
	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.Info("Starting Docsift Server",
		"version", Version,
		"build_time", BuildTime)
	if cfgErr != nil {
		logger.Warn("Failed to load config, using defaults", "error", cfgErr)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Locate the LibreOffice binary for legacy format conversion. The
	// service runs without it; converter-backed formats then report an
	// unsupported format error.
	var converter *soffice.Converter
	if binary, ok := soffice.Find(cfg.Extract.SofficePath); ok {
		converter = soffice.New(binary, cfg.Extract.SofficeTimeout, cfg.Extract.TempDir, logger)
		logger.Info("Initialized document converter", "binary", binary, "timeout", cfg.Extract.SofficeTimeout)
	} else {
		logger.Warn("LibreOffice not found, legacy format conversion disabled",
			"formats", extract.ConverterExtensions())
	}

	// Initialize extraction service
	svc := extract.NewService(converter, logger)
	logger.Info("Initialized extraction service", "formats", extract.Formats.Available())

	// Initialize HTTP adapter
	handler := httpAdapter.New(svc, httpAdapter.Config{
		MaxUploadBytes: cfg.Extract.MaxUploadBytes,
		DefaultRender:  cfg.Extract.DefaultRender,
		Version:        Version,
	}, logger)
	logger.Info("Initialized HTTP adapter")

	// Wrap with CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	}).Handler(handler)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	go func() {
		logger.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	logger.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}
