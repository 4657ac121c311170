package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// FileEnv names the environment variable that points at an optional config
// file.
const FileEnv = "UTILKIT_CONFIG"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Logging    LogConfig
	RateLimit  RateLimitConfig
	Calculator CalculatorConfig
	Formatter  FormatterConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CalculatorConfig holds arithmetic evaluator configuration.
type CalculatorConfig struct {
	Precision int `envconfig:"CALC_PRECISION" default:"2"`
}

// FormatterConfig holds text evaluator configuration.
type FormatterConfig struct {
	TruncateSuffix string `envconfig:"FORMAT_TRUNCATE_SUFFIX" default:"..."`
	MaxLength      int    `envconfig:"FORMAT_MAX_LENGTH" default:"50"`
}

// fileConfig mirrors Config for file decoding. Pointers tell an absent key
// from a zero value.
type fileConfig struct {
	Server struct {
		Port *string `yaml:"port" toml:"port"`
		Host *string `yaml:"host" toml:"host"`
	} `yaml:"server" toml:"server"`
	Logging struct {
		Level       *string `yaml:"level" toml:"level"`
		Development *bool   `yaml:"development" toml:"development"`
	} `yaml:"logging" toml:"logging"`
	RateLimit struct {
		RequestsPerSecond *int  `yaml:"requests_per_second" toml:"requests_per_second"`
		Burst             *int  `yaml:"burst" toml:"burst"`
		Enabled           *bool `yaml:"enabled" toml:"enabled"`
	} `yaml:"rate_limit" toml:"rate_limit"`
	Calculator struct {
		Precision *int `yaml:"precision" toml:"precision"`
	} `yaml:"calculator" toml:"calculator"`
	Formatter struct {
		TruncateSuffix *string `yaml:"truncate_suffix" toml:"truncate_suffix"`
		MaxLength      *int    `yaml:"max_length" toml:"max_length"`
	} `yaml:"formatter" toml:"formatter"`
}

// Load loads configuration from environment variables, layered over the file
// named by UTILKIT_CONFIG when set.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(FileEnv))
}

// LoadFile loads configuration from path (YAML or TOML, by extension) and
// the environment. Environment variables win over file values, which win
// over defaults. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if path != "" {
		fc, err := readFile(path)
		if err != nil {
			return nil, err
		}
		cfg.apply(fc)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Calculator: CalculatorConfig{
			Precision: 2,
		},
		Formatter: FormatterConfig{
			TruncateSuffix: "...",
			MaxLength:      50,
		},
	}
}

// Validate rejects values the evaluators and middleware cannot run with.
func (c *Config) Validate() error {
	if c.Formatter.MaxLength <= 0 {
		return fmt.Errorf("invalid config: FORMAT_MAX_LENGTH must be positive, got %d", c.Formatter.MaxLength)
	}
	if c.Calculator.Precision < -15 || c.Calculator.Precision > 15 {
		return fmt.Errorf("invalid config: CALC_PRECISION must be within [-15, 15], got %d", c.Calculator.Precision)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid config: rate limit needs positive RATE_LIMIT_RPS and RATE_LIMIT_BURST")
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func readFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("unsupported config file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &fc, nil
}

func (c *Config) apply(fc *fileConfig) {
	overlay(&c.Server.Port, fc.Server.Port, "PORT")
	overlay(&c.Server.Host, fc.Server.Host, "HOST")
	overlay(&c.Logging.Level, fc.Logging.Level, "LOG_LEVEL")
	overlay(&c.Logging.Development, fc.Logging.Development, "LOG_DEV")
	overlay(&c.RateLimit.RequestsPerSecond, fc.RateLimit.RequestsPerSecond, "RATE_LIMIT_RPS")
	overlay(&c.RateLimit.Burst, fc.RateLimit.Burst, "RATE_LIMIT_BURST")
	overlay(&c.RateLimit.Enabled, fc.RateLimit.Enabled, "RATE_LIMIT_ENABLED")
	overlay(&c.Calculator.Precision, fc.Calculator.Precision, "CALC_PRECISION")
	overlay(&c.Formatter.TruncateSuffix, fc.Formatter.TruncateSuffix, "FORMAT_TRUNCATE_SUFFIX")
	overlay(&c.Formatter.MaxLength, fc.Formatter.MaxLength, "FORMAT_MAX_LENGTH")
}

// overlay copies a file value unless the environment already set the field
func overlay[T any](dst *T, src *T, env string) {
	if src == nil {
		return
	}
	if _, set := os.LookupEnv(env); set {
		return
	}
	*dst = *src
}
