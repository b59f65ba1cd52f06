package config

import (
	"os"
	"strconv"
	"time"
)

// MetricsConfig controls the Prometheus request metrics and the /metrics endpoint.
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables; the defaults reproduce the
// service's fixed bind address (0.0.0.0:8000).
type AppConfig struct {
	Name               string
	Host               string
	Port               string
	Timezone           string
	DocsEnabled        bool
	ShutdownTimeoutSec int
	Metrics            MetricsConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Name:               getEnv("APP_NAME", "statusapi"),
		Host:               getEnv("APP_HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "8000"),
		Timezone:           getEnv("APP_TIMEZONE", "UTC"),
		DocsEnabled:        getEnvBool("DOCS_ENABLED", true),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
			Path:    getEnv("METRICS_PATH", "/metrics"),
		},
	}
}

// Addr returns the listen address in host:port form.
func (c *AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Location resolves Timezone. Unknown names resolve to UTC together with the
// lookup error so the caller can report the fallback.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC, err
	}
	return loc, nil
}

// ShutdownTimeout is the time allowed for in-flight requests to drain.
func (c *AppConfig) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSec <= 0 {
		return 0
	}
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
