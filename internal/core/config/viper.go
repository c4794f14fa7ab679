package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration using viper.
// CLI flags > environment > config file > defaults precedence; flags are
// applied by the caller on the returned Config.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Checked before env binding so only file values are inspected.
		if err := validateNoSecretsInConfig(v); err != nil {
			return nil, err
		}
	}

	// Bind environment variables with SV_ prefix
	v.SetEnvPrefix("SV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			GRPCPort:        v.GetInt("server.grpc_port"),
			HTTPPort:        v.GetInt("server.http_port"),
			RequestTimeout:  v.GetDuration("server.request_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Database: DatabaseConfig{
			URL: v.GetString("database.url"),
		},
		Catalog: CatalogConfig{
			Path: v.GetString("catalog.path"),
		},
		Publisher: PublisherConfig{
			Name: v.GetString("publisher.name"),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: v.GetString("telemetry.otlp_endpoint"),
			ServiceName:  v.GetString("telemetry.service_name"),
		},
	}
	cfg.Model.DefaultBudget = v.GetFloat64("model.default_budget")
	cfg.Model.WorkingMediaPercent = v.GetFloat64("model.working_media_percent")
	cfg.Model.PlatformFeePercent = v.GetFloat64("model.platform_fee_percent")
	cfg.Model.ManagementPercent = v.GetFloat64("model.management_percent")
	cfg.Model.StandardPath.WorkingMediaPercent = v.GetFloat64("model.standard_path.working_media_percent")
	cfg.Model.StandardPath.MatchRateFactor = v.GetFloat64("model.standard_path.match_rate_factor")
	cfg.Model.StandardPath.CPMFactor = v.GetFloat64("model.standard_path.cpm_factor")
	cfg.Model.StandardPath.ViewabilityFactor = v.GetFloat64("model.standard_path.viewability_factor")

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.grpc_port", d.Server.GRPCPort)
	v.SetDefault("server.http_port", d.Server.HTTPPort)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout.String())
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout.String())
	v.SetDefault("database.url", d.Database.URL)
	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("publisher.name", d.Publisher.Name)
	v.SetDefault("model.default_budget", d.Model.DefaultBudget)
	v.SetDefault("model.working_media_percent", d.Model.WorkingMediaPercent)
	v.SetDefault("model.platform_fee_percent", d.Model.PlatformFeePercent)
	v.SetDefault("model.management_percent", d.Model.ManagementPercent)
	v.SetDefault("model.standard_path.working_media_percent", d.Model.StandardPath.WorkingMediaPercent)
	v.SetDefault("model.standard_path.match_rate_factor", d.Model.StandardPath.MatchRateFactor)
	v.SetDefault("model.standard_path.cpm_factor", d.Model.StandardPath.CPMFactor)
	v.SetDefault("model.standard_path.viewability_factor", d.Model.StandardPath.ViewabilityFactor)
	v.SetDefault("telemetry.otlp_endpoint", d.Telemetry.OTLPEndpoint)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
}

// Validate checks port ranges, positive timeouts and the projection model.
// Callers re-run it after applying CLI flag overrides.
func Validate(cfg *Config) error {
	if err := validatePort("server.grpc_port", cfg.Server.GRPCPort); err != nil {
		return err
	}
	if err := validatePort("server.http_port", cfg.Server.HTTPPort); err != nil {
		return err
	}
	if cfg.Server.GRPCPort == cfg.Server.HTTPPort {
		return fmt.Errorf("server.grpc_port and server.http_port must differ, both are %d", cfg.Server.GRPCPort)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be positive, got %v", cfg.Server.RequestTimeout)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %v", cfg.Server.ShutdownTimeout)
	}
	if strings.TrimSpace(cfg.Publisher.Name) == "" {
		return fmt.Errorf("publisher.name must not be empty")
	}
	if err := cfg.Model.Validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	return nil
}

func validatePort(key string, port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535, got %d", key, port)
	}
	return nil
}

// validateNoSecretsInConfig enforces environment-only credentials (12-factor principle).
func validateNoSecretsInConfig(v *viper.Viper) error {
	if v.IsSet("database.password") {
		return fmt.Errorf("database passwords not allowed in config files (use SV_DATABASE_URL or --db-url)")
	}
	if raw := v.GetString("database.url"); raw != "" {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid database.url in config file: %w", err)
		}
		if _, hasPassword := u.User.Password(); hasPassword {
			return fmt.Errorf("database passwords not allowed in config files (use SV_DATABASE_URL or --db-url)")
		}
	}
	return nil
}
