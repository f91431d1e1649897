package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/samirrijal/isonwater/internal/core/domain"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Dataset    DatasetConfig    `mapstructure:"dataset"`
	Validation ValidationConfig `mapstructure:"validation"`
	Log        LogConfig        `mapstructure:"log"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	ReadTimeout     int      `mapstructure:"read_timeout"`
	WriteTimeout    int      `mapstructure:"write_timeout"`
	BodyLimit       int      `mapstructure:"body_limit"`
	HealthCheckPath string   `mapstructure:"health_check_path"`
	ProxyHeader     string   `mapstructure:"proxy_header"`
	TrustedProxies  []string `mapstructure:"trusted_proxies"` // only these peers may set ProxyHeader
	RateLimit       int      `mapstructure:"rate_limit"`      // requests per minute per IP, 0 disables
	CORSOrigins     string   `mapstructure:"cors_origins"`
	CacheMaxAge     int      `mapstructure:"cache_max_age"`
}

type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

type ValidationConfig struct {
	StrictLatitude bool `mapstructure:"strict_latitude"`
}

// Rule returns the coordinate rule selected by the configuration.
func (v ValidationConfig) Rule() domain.CoordinateRule {
	if v.StrictLatitude {
		return domain.StrictRule
	}
	return domain.DefaultRule
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TelemetryConfig struct {
	ServiceName  string `mapstructure:"service_name"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	Enabled      bool   `mapstructure:"enabled"`
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.body_limit", 1024*1024)
	v.SetDefault("server.health_check_path", "/health")
	v.SetDefault("server.proxy_header", "X-Forwarded-For")
	v.SetDefault("server.trusted_proxies", []string{"127.0.0.1", "::1"})
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.cors_origins", "*")
	v.SetDefault("server.cache_max_age", 3600)
	v.SetDefault("dataset.path", "data/earth-lands-1m.geo.json.gz")
	v.SetDefault("validation.strict_latitude", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.otlp_endpoint", "localhost:4317")
	v.SetDefault("telemetry.enabled", false)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: ISONWATER_DATASET_PATH → dataset.path
	v.SetEnvPrefix("ISONWATER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Server.BodyLimit <= 0 {
		errs = append(errs, "server.body_limit must be positive")
	}
	if !strings.HasPrefix(c.Server.HealthCheckPath, "/") || c.Server.HealthCheckPath == "/" {
		errs = append(errs, fmt.Sprintf("server.health_check_path must be an absolute path other than /, got %q", c.Server.HealthCheckPath))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, "server.rate_limit must not be negative")
	}
	if c.Server.CacheMaxAge < 0 {
		errs = append(errs, "server.cache_max_age must not be negative")
	}
	if c.Dataset.Path == "" {
		errs = append(errs, "dataset.path is required")
	}
	if c.Telemetry.Enabled && c.Telemetry.OTLPEndpoint == "" {
		errs = append(errs, "telemetry.otlp_endpoint is required when telemetry is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
