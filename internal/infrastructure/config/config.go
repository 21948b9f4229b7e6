package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration, read from the environment. Every
// secret ships with an insecure development default; main warns loudly when
// those defaults survive into a non-development environment.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string `env:"JWT_SECRET_KEY, default=your-secret-key-change-in-production"`

	// CORSOrigins is ";"-delimited so defaults can carry full origins.
	CORSOrigins []string `env:"CORS_ORIGINS, delimiter=;, default=http://localhost:5173;http://localhost:3000"`

	Admin AdminConfig
	MySQL MySQLConfig
	Redis RedisConfig
}

// AdminConfig seeds the bootstrap admin account.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@example.com"`
}

type MySQLConfig struct {
	DSN string `env:"MYSQL_DSN, default=portfolio:portfolio@tcp(localhost:3306)/portfolio?parseTime=true"`
}

// RedisConfig configures the optional login rate limiter backend. An empty
// Addr disables Redis entirely.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// InsecureDefaults lists the secrets still set to their built-in development
// values. Non-empty in production is a deployment mistake.
func (c *Config) InsecureDefaults() []string {
	var insecure []string
	if c.JWTSecret == "your-secret-key-change-in-production" {
		insecure = append(insecure, "JWT_SECRET_KEY")
	}
	if c.Admin.Password == "admin123" {
		insecure = append(insecure, "ADMIN_PASSWORD")
	}
	return insecure
}
