// Package config loads application configuration from environment variables.
package config

import (
	"os"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable. Database settings are optional: when no host or name
// is set the service runs in degraded mode (reads return empty sets, writes
// are refused with a store error) instead of refusing to start.
type Config struct {
	Env       string // application environment (e.g. "dev", "prod")
	Port      string // HTTP port to listen on
	PublicDir string // directory with the static front-end assets
	DBUser    string // database username
	DBPass    string // database password (optional)
	DBHost    string // database host address
	DBPort    string // database port number
	DBName    string // database name
	AMQPURL   string // RabbitMQ connection URL (empty falls back to localhost)
}

// Load reads configuration from the environment, filling in defaults that
// match the development setup. Nothing here is fatal: the site must come up
// even with no backing services so the static pages keep working.
func Load() Config {
	amqp := os.Getenv("RABBITMQ_URL")
	if amqp == "" {
		amqp = os.Getenv("AMQP_URL")
	}
	return Config{
		Env:       getenv("APP_ENV", "dev"),
		Port:      getenv("APP_PORT", "8000"),
		PublicDir: getenv("PUBLIC_DIR", "public"),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    os.Getenv("DB_PASS"),
		DBHost:    os.Getenv("DB_HOST"),
		DBPort:    getenv("DB_PORT", "3306"),
		DBName:    os.Getenv("DB_NAME"),
		AMQPURL:   amqp,
	}
}

// HasDatabase reports whether enough database settings are present to open a
// connection. Callers use this to decide between normal and degraded mode.
func (c Config) HasDatabase() bool {
	return c.DBHost != "" && c.DBName != ""
}

// getenv returns the value of key or def when the variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
