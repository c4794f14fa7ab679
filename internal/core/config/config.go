// Package config provides configuration management for segmentvet commands.
package config

import (
	"time"

	"github.com/solatis/segmentvet/internal/segments"
)

// Config is the full runtime configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Catalog   CatalogConfig
	Publisher PublisherConfig
	Model     segments.Model
	Telemetry TelemetryConfig
}

// ServerConfig holds listener settings for the gRPC and HTTP servers.
type ServerConfig struct {
	Host            string
	GRPCPort        int
	HTTPPort        int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig locates the optional SQL catalog store.
// Empty URL means no store.
type DatabaseConfig struct {
	URL string
}

// CatalogConfig locates an optional YAML/JSON catalog file.
// When set it takes precedence over the database store.
type CatalogConfig struct {
	Path string
}

// PublisherConfig names the publisher whose inventory segments are checked against.
type PublisherConfig struct {
	Name string
}

// TelemetryConfig configures tracing export. Empty endpoint disables export.
type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

// Default returns configuration with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			GRPCPort:        50051,
			HTTPPort:        8080,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Publisher: PublisherConfig{
			Name: "Kargo",
		},
		Model: segments.DefaultModel(),
		Telemetry: TelemetryConfig{
			ServiceName: "segmentvet",
		},
	}
}
