// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config represents the main configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Extract ExtractConfig `yaml:"extract"`
	CORS    CORSConfig    `yaml:"cors"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host    string        `yaml:"host"`
	Port    int           `yaml:"port"`
	Timeout time.Duration `yaml:"timeout"`
}

// ExtractConfig contains extraction pipeline configuration
type ExtractConfig struct {
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	DefaultRender  string `yaml:"default_render"` // "text" or "markdown"

	// Converter fallback for legacy formats (.ppt, .doc, .odp, ...).
	// An empty SofficePath means "probe PATH"; conversion is disabled
	// when no binary is found.
	SofficePath    string        `yaml:"soffice_path"`
	SofficeTimeout time.Duration `yaml:"soffice_timeout"`
	TempDir        string        `yaml:"temp_dir"`
}

// CORSConfig contains cross-origin settings for the HTTP adapter
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoggingConfig contains log output configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load loads configuration from a YAML file, then applies environment
// overrides and defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the default configuration with environment overrides
// applied.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Validate checks the assembled configuration. Called after defaults, so
// every field is expected to hold a concrete value.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Server,
		validation.Field(&c.Server.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := validation.ValidateStruct(&c.Extract,
		validation.Field(&c.Extract.MaxUploadBytes, validation.Required, validation.Min(int64(1))),
		validation.Field(&c.Extract.DefaultRender, validation.Required, validation.In("text", "markdown")),
	); err != nil {
		return fmt.Errorf("extract config: %w", err)
	}
	if err := validation.ValidateStruct(&c.Logging,
		validation.Field(&c.Logging.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Logging.Format, validation.Required, validation.In("json", "text")),
	); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	return nil
}

// applyEnv overrides file values from the environment.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SOFFICE_PATH"); v != "" {
		cfg.Extract.SofficePath = v
	}
	if v := os.Getenv("SOFFICE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SOFFICE_TIMEOUT %q: %w", v, err)
		}
		cfg.Extract.SofficeTimeout = d
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_BYTES %q: %w", v, err)
		}
		cfg.Extract.MaxUploadBytes = n
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORS.AllowedOrigins = origins
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 60 * time.Second
	}
	if cfg.Extract.MaxUploadBytes == 0 {
		cfg.Extract.MaxUploadBytes = 50 << 20 // 50 MiB
	}
	if cfg.Extract.DefaultRender == "" {
		cfg.Extract.DefaultRender = "text"
	}
	if cfg.Extract.SofficeTimeout == 0 {
		cfg.Extract.SofficeTimeout = 2 * time.Minute
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
