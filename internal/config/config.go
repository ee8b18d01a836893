package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates the railway CLI configuration.
type Config struct {
	Network NetworkConfig `yaml:"network"`
	Query   QueryConfig   `yaml:"query"`
	Logging LoggingConfig `yaml:"logging"`
}

// NetworkConfig selects the rail network to load.
// File wins over Routes; with neither set the sample network is used.
type NetworkConfig struct {
	Routes string `yaml:"routes"` // comma/space separated route tokens
	File   string `yaml:"file"`   // path of a YAML network document
	Strict bool   `yaml:"strict"` // reject duplicate routes
}

// QueryConfig bounds query execution.
type QueryConfig struct {
	Timeout time.Duration `yaml:"timeout"` // 0 disables the deadline
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// Environment variables read by Load.
const (
	EnvConfigFile    = "RAILWAY_CONFIG"
	EnvRoutes        = "RAILWAY_ROUTES"
	EnvNetwork       = "RAILWAY_NETWORK"
	EnvStrict        = "RAILWAY_STRICT"
	EnvQueryTimeout  = "RAILWAY_QUERY_TIMEOUT"
	EnvLogLevel      = "RAILWAY_LOG_LEVEL"
	EnvLogFormat     = "RAILWAY_LOG_FORMAT"
	EnvIncludeCaller = "RAILWAY_LOG_INCLUDE_CALLER"
)

const (
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
)

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// RAILWAY_CONFIG (if any), then individual environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Network.Routes = valueOrDefault(EnvRoutes, cfg.Network.Routes)
	cfg.Network.File = valueOrDefault(EnvNetwork, cfg.Network.File)
	cfg.Network.Strict = parseBoolWithDefault(EnvStrict, cfg.Network.Strict)
	cfg.Logging.Level = valueOrDefault(EnvLogLevel, cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault(EnvLogFormat, cfg.Logging.Format)
	cfg.Logging.IncludeCaller = parseBoolWithDefault(EnvIncludeCaller, cfg.Logging.IncludeCaller)

	if v := os.Getenv(EnvQueryTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvQueryTimeout, err)
		}
		cfg.Query.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: want text or json", c.Logging.Format)
	}
	if c.Query.Timeout < 0 {
		return fmt.Errorf("query timeout %s is negative", c.Query.Timeout)
	}

	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
