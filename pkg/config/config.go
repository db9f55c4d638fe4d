// Package config provides server configuration: defaults, an optional YAML
// file, and SYNTHD_* environment overrides, applied in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the resolved server configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `yaml:"port" validate:"gte=1,lte=65535"`

	// MaxCount bounds the number of records a single request may produce.
	// Requests above it are clamped, never rejected.
	MaxCount int `yaml:"maxCount" validate:"gte=1,lte=100000"`

	// ReadTimeoutSec and WriteTimeoutSec bound request handling.
	ReadTimeoutSec  int `yaml:"readTimeout" validate:"gte=1"`
	WriteTimeoutSec int `yaml:"writeTimeout" validate:"gte=1"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"logLevel" validate:"oneof=debug info warn error"`
	// LogFormat is text or json.
	LogFormat string `yaml:"logFormat" validate:"oneof=text json"`

	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
}

// CORSConfig defines cross-origin settings.
type CORSConfig struct {
	// Enabled turns CORS header handling on. Default: true.
	Enabled bool `yaml:"enabled"`
	// AllowOrigins lists allowed origins; "*" allows any.
	AllowOrigins []string `yaml:"allowOrigins"`
	// MaxAge is the preflight cache duration in seconds.
	MaxAge int `yaml:"maxAge" validate:"gte=0"`
}

// RateLimitConfig defines per-IP rate limiting.
type RateLimitConfig struct {
	// Enabled turns rate limiting on. Default: false.
	Enabled bool `yaml:"enabled"`
	// RequestsPerSecond is the token refill rate per client IP.
	RequestsPerSecond float64 `yaml:"requestsPerSecond" validate:"gte=0"`
	// BurstSize is the bucket capacity per client IP.
	BurstSize int `yaml:"burstSize" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:            8080,
		MaxCount:        100,
		ReadTimeoutSec:  15,
		WriteTimeoutSec: 30,
		LogLevel:        "info",
		LogFormat:       "text",
		CORS: CORSConfig{
			Enabled:      true,
			AllowOrigins: []string{"*"},
			MaxAge:       86400,
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: 10,
			BurstSize:         20,
		},
	}
}

// Load resolves the configuration: defaults, then the YAML file at path if
// path is non-empty, then environment overrides, then validation.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays SYNTHD_* environment variables onto the configuration.
// Unset variables leave the current value; malformed numeric values are
// ignored.
func (c *Config) applyEnv() {
	envInt("SYNTHD_PORT", &c.Port)
	envInt("SYNTHD_MAX_COUNT", &c.MaxCount)
	envInt("SYNTHD_READ_TIMEOUT", &c.ReadTimeoutSec)
	envInt("SYNTHD_WRITE_TIMEOUT", &c.WriteTimeoutSec)
	envString("SYNTHD_LOG_LEVEL", &c.LogLevel)
	envString("SYNTHD_LOG_FORMAT", &c.LogFormat)
	envBool("SYNTHD_RATE_LIMIT_ENABLED", &c.RateLimit.Enabled)
	envFloat("SYNTHD_RATE_LIMIT_RPS", &c.RateLimit.RequestsPerSecond)
	envInt("SYNTHD_RATE_LIMIT_BURST", &c.RateLimit.BurstSize)
	envBool("SYNTHD_CORS_ENABLED", &c.CORS.Enabled)

	if v := os.Getenv("SYNTHD_ALLOWED_ORIGINS"); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			c.CORS.AllowOrigins = origins
		}
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, ve := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", ve.Namespace(), ve.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func envString(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func envInt(name string, dst *int) {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envFloat(name string, dst *float64) {
	if v := os.Getenv(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envBool(name string, dst *bool) {
	switch strings.ToLower(os.Getenv(name)) {
	case "true", "1", "yes", "on":
		*dst = true
	case "false", "0", "no", "off":
		*dst = false
	}
}
