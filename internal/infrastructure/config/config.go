package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, loaded once at startup.
// Required keys fail the load so a misconfigured process never starts.
type Config struct {
	ServerHost   string        `env:"SERVER_HOST, required"`
	JWTSecret    string        `env:"JWT_SECRET, required"`
	ExpiresIn    time.Duration `env:"EXPIRES_IN, required"`
	DocumentRoot string        `env:"DOCUMENT_ROOT, default=public/documents"`
	Env          string        `env:"ENV, default=development"`
	LogLevel     string        `env:"LOG_LEVEL, default=info"`

	DB DBConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST, required"`
	Port     int    `env:"DB_PORT, required"`
	Name     string `env:"DB_NAME, required"`
	User     string `env:"DB_USER, required"`
	Password string `env:"DB_PASSWORD, required"`
}

// DSN renders the Postgres connection string for the pgx driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", c.User, c.Password, c.Host, c.Port, c.Name)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
