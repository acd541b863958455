// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds every runtime setting, parsed once at startup and passed
// explicitly to the components that need it. No package reads the
// environment after Load returns.
type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"8080"`

	DB    DBConfig
	Redis RedisConfig

	// JWTSecret signs and verifies bearer tokens. The server refuses
	// protected requests when it is empty.
	JWTSecret string `env:"JWT_SECRET"`

	// JWTExpiration is the lifetime of issued tokens.
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`

	// CacheTTL is how long a cached user snapshot is served before the store
	// is consulted again.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"15m"`

	// AuthRateLimit is the number of register/login attempts allowed per
	// client IP within AuthRateWindow.
	AuthRateLimit  int           `env:"AUTH_RATE_LIMIT" envDefault:"10"`
	AuthRateWindow time.Duration `env:"AUTH_RATE_WINDOW" envDefault:"1m"`
}

// DBConfig holds the MySQL connection settings.
type DBConfig struct {
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Host     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	Port     string `env:"DB_PORT" envDefault:"3306"`
	Name     string `env:"DB_NAME"`

	// RunMigrations enables the schema automigration on startup.
	RunMigrations bool `env:"RUN_MIGRATIONS"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"127.0.0.1"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// Addr returns the host:port address of the Redis server.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
