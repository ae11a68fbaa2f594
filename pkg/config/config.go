// Package config provides the unified configuration system for tabsynth.
// It defines a single ServiceConfig structure shared by the CLI and the
// HTTP service, organized into logical sections:
//
//   - Server: listen address and request timeouts
//   - Generation: record-count bounds and defaults for the pipeline
//   - Storage: upload and output directories, output compression
//   - Observability: metrics and logging settings
//
// Example usage:
//
//	cfg := config.NewServiceConfig()
//	cfg.Generation.MaxRecords = 50000
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"fmt"
	"time"
)

// ServiceConfig is the single unified configuration structure used by every
// entry point. Defaults are production-ready; load a YAML file over them to
// override specific fields.
type ServiceConfig struct {
	// Name identifies the service instance
	Name string `yaml:"name" json:"name"`
	// Version indicates the configuration version
	Version string `yaml:"version" json:"version"`

	// Server settings for the HTTP boundary
	Server ServerConfig `yaml:"server" json:"server"`

	// Generation settings bound the synthesis pipeline
	Generation GenerationConfig `yaml:"generation" json:"generation"`

	// Storage settings for uploaded samples and generated output
	Storage StorageConfig `yaml:"storage" json:"storage"`

	// Observability settings for monitoring and debugging
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the listen host
	Host string `yaml:"host" json:"host"`
	// Port is the listen port
	Port int `yaml:"port" json:"port"`
	// ReadTimeout for reading the full request, uploads included
	ReadTimeout time.Duration `yaml:"read_timeout" json:"read_timeout"`
	// WriteTimeout for writing the full response
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
	// MaxUploadBytes caps the size of uploaded sample files
	MaxUploadBytes int64 `yaml:"max_upload_bytes" json:"max_upload_bytes"`
}

// GenerationConfig contains the record-count policy for the pipeline.
// Requested counts outside [MinRecords, MaxRecords] are clamped, not rejected.
type GenerationConfig struct {
	// DefaultRecords is used when a request names no count
	DefaultRecords int `yaml:"default_records" json:"default_records"`
	// MinRecords is the inclusive lower clamp bound
	MinRecords int `yaml:"min_records" json:"min_records"`
	// MaxRecords is the inclusive upper clamp bound
	MaxRecords int `yaml:"max_records" json:"max_records"`
	// Timeout bounds a single generation pipeline run
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// StorageConfig contains directory and output settings.
type StorageConfig struct {
	// UploadDir receives decoded sample files
	UploadDir string `yaml:"upload_dir" json:"upload_dir"`
	// OutputDir receives generated datasets
	OutputDir string `yaml:"output_dir" json:"output_dir"`
	// Compression selects output compression (none, gzip, zstd)
	Compression string `yaml:"compression" json:"compression"`
}

// ObservabilityConfig contains monitoring and logging settings.
type ObservabilityConfig struct {
	// EnableMetrics activates the Prometheus /metrics endpoint
	EnableMetrics bool `yaml:"enable_metrics" json:"enable_metrics"`
	// LogLevel sets logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level" json:"log_level"`
	// Development switches the logger to console encoding
	Development bool `yaml:"development" json:"development"`
}

// NewServiceConfig creates a ServiceConfig with sensible defaults.
func NewServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		Name:    "tabsynth",
		Version: "1.0.0",
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxUploadBytes:  32 << 20, // 32MB
		},
		Generation: GenerationConfig{
			DefaultRecords: 100,
			MinRecords:     1,
			MaxRecords:     10000,
			Timeout:        30 * time.Second,
		},
		Storage: StorageConfig{
			UploadDir:   "uploads",
			OutputDir:   "output",
			Compression: "none",
		},
		Observability: ObservabilityConfig{
			EnableMetrics: true,
			LogLevel:      "info",
			Development:   false,
		},
	}
}

// Validate validates the configuration for correctness.
// It checks required fields and ensures values are within acceptable ranges.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be in (0, 65535]")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}
	if c.Generation.MinRecords < 1 {
		return fmt.Errorf("min_records must be at least 1")
	}
	if c.Generation.MaxRecords < c.Generation.MinRecords {
		return fmt.Errorf("max_records must be >= min_records")
	}
	if c.Generation.DefaultRecords < c.Generation.MinRecords || c.Generation.DefaultRecords > c.Generation.MaxRecords {
		return fmt.Errorf("default_records must be within [min_records, max_records]")
	}
	if c.Storage.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	switch c.Storage.Compression {
	case "", "none", "gzip", "zstd":
	default:
		return fmt.Errorf("compression must be one of none, gzip, zstd")
	}
	return nil
}

// Addr returns the server listen address in host:port form.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Clamp bounds a requested record count to the configured inclusive range.
// Out-of-range requests are clamped, never rejected.
func (g *GenerationConfig) Clamp(count int) int {
	if count < g.MinRecords {
		return g.MinRecords
	}
	if count > g.MaxRecords {
		return g.MaxRecords
	}
	return count
}
