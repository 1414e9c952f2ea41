// Package config reads folio settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds the settings of every folio command.
type Config struct {
	Port         string        `env:"PORT" validate:"required,numeric"`
	ContentPath  string        `env:"FOLIO_CONTENT"`
	ContentDB    string        `env:"FOLIO_CONTENT_DB"`
	Assets       string        `env:"FOLIO_ASSETS" validate:"required"`
	SessionTTL   time.Duration `env:"FOLIO_SESSION_TTL" validate:"min=1s"`
	LogLevel     string        `env:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat    string        `env:"LOG_FORMAT" validate:"oneof=json console"`
	GinMode      string        `env:"GIN_MODE" validate:"omitempty,oneof=debug release test"`
	OTLPEndpoint string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string        `env:"OTEL_SERVICE_NAME" validate:"required"`
}

// Defaults used when a variable is unset or empty.
const (
	DefaultPort        = "8080"
	DefaultAssets      = "."
	DefaultSessionTTL  = 30 * time.Minute
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "json"
	DefaultServiceName = "folio"
)

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// Load reads the process environment.
func Load() (*Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup and validates it.
func FromLookup(lookup LookupFunc) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Port:         get("PORT", DefaultPort),
		ContentPath:  get("FOLIO_CONTENT", ""),
		ContentDB:    get("FOLIO_CONTENT_DB", ""),
		Assets:       get("FOLIO_ASSETS", DefaultAssets),
		SessionTTL:   DefaultSessionTTL,
		LogLevel:     strings.ToLower(get("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:    strings.ToLower(get("LOG_FORMAT", DefaultLogFormat)),
		GinMode:      get("GIN_MODE", ""),
		OTLPEndpoint: get("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:  get("OTEL_SERVICE_NAME", DefaultServiceName),
	}

	if raw := get("FOLIO_SESSION_TTL", ""); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("FOLIO_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// HumanReadableLogs reports whether logs go to a console writer.
func (c *Config) HumanReadableLogs() bool {
	return c.LogFormat == "console"
}

// Validate checks every field. Errors name the environment variable.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		fe := ves[0]
		return fmt.Errorf("invalid configuration: %s failed validation for tag '%s'", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("invalid configuration: %w", err)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("env"); name != "" {
				return name
			}
			return f.Name
		})
		validateInst = v
	})
	return validateInst
}
