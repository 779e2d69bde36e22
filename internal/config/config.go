// Package config loads process configuration from defaults, an optional YAML
// file and DEX_* environment variables, in that order.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "DEX_"

// Config holds all runtime configuration for the dex server
type Config struct {
	Server  ServerConfig  `yaml:"server" envPrefix:"SERVER_"`
	PokeAPI PokeAPIConfig `yaml:"pokeapi" envPrefix:"POKEAPI_"`
	Redis   RedisConfig   `yaml:"redis" envPrefix:"REDIS_"`
	Session SessionConfig `yaml:"session" envPrefix:"SESSION_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
	Tracing TracingConfig `yaml:"tracing" envPrefix:"TRACING_"`
}

// ServerConfig configures the gRPC listener
type ServerConfig struct {
	Port            int           `yaml:"port" env:"PORT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// PokeAPIConfig configures the remote data source
type PokeAPIConfig struct {
	BaseURL      string        `yaml:"base_url" env:"BASE_URL"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"FETCH_TIMEOUT"`
}

// RedisConfig selects the resource cache. An empty endpoint keeps responses in memory.
type RedisConfig struct {
	Endpoint string `yaml:"endpoint" env:"ENDPOINT"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB"`
}

// SessionConfig configures per-client sessions
type SessionConfig struct {
	IdleTTL             time.Duration `yaml:"idle_ttl" env:"IDLE_TTL"`
	PageSize            int           `yaml:"page_size" env:"PAGE_SIZE"`
	MaxEvolutionFetches int           `yaml:"max_evolution_fetches" env:"MAX_EVOLUTION_FETCHES"`
}

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// TracingConfig enables OTLP export when an endpoint is set
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint" env:"ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            50051,
			ShutdownTimeout: 30 * time.Second,
		},
		PokeAPI: PokeAPIConfig{
			BaseURL:      "https://pokeapi.co/api/v2",
			FetchTimeout: 30 * time.Second,
		},
		Session: SessionConfig{
			IdleTTL:             30 * time.Minute,
			PageSize:            20,
			MaxEvolutionFetches: 4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Tracing: TracingConfig{
			ServiceName: "dex-api",
		},
	}
}

// Load builds the configuration. path may be empty to skip the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "reading config file %q", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "parsing config file %q", path)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parsing environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section and normalizes the log settings
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout <= 0 {
		vb.Fieldf("server.shutdown_timeout", "must be positive, got %s", c.Server.ShutdownTimeout)
	}
	errors.ValidateRequired("pokeapi.base_url", c.PokeAPI.BaseURL, vb)
	if c.PokeAPI.FetchTimeout <= 0 {
		vb.Fieldf("pokeapi.fetch_timeout", "must be positive, got %s", c.PokeAPI.FetchTimeout)
	}
	if c.Session.IdleTTL <= 0 {
		vb.Fieldf("session.idle_ttl", "must be positive, got %s", c.Session.IdleTTL)
	}
	if c.Session.PageSize < 1 {
		vb.Field("session.page_size", "must be at least 1")
	}
	if c.Session.MaxEvolutionFetches < 1 {
		vb.Field("session.max_evolution_fetches", "must be at least 1")
	}
	errors.ValidateEnum("log.level", c.Log.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)
	if c.Tracing.Endpoint != "" && c.Tracing.ServiceName == "" {
		vb.RequiredField("tracing.service_name")
	}
	return vb.Build()
}
