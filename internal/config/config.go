package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string        `env:"SERVER_PORT" envDefault:"8080"`
	Environment     string        `env:"APP_ENV" envDefault:"development"`
	AppURL          string        `env:"APP_URL" envDefault:"http://localhost:3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ResetDB         bool          `env:"RESET_DB" envDefault:"false"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	SwaggerHost     string        `env:"SWAGGER_HOST"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass string `env:"REDIS_PASSWORD"`

	Database DatabaseConfig
	Auth     AuthConfig
	Cache    CacheConfig
}

// DatabaseConfig is the subset needed by tools that only touch the store.
type DatabaseConfig struct {
	MySQLDSN   string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/backoffice?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`
}

// AuthConfig groups session authentication settings.
type AuthConfig struct {
	// Secret signs session tokens. The process refuses to start without it.
	Secret    string        `env:"AUTH_SECRET,required,notEmpty"`
	TokenTTL  time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"168h"`
	ClockSkew time.Duration `env:"AUTH_CLOCK_SKEW" envDefault:"30s"`
}

// CacheConfig controls redis-backed read caches.
type CacheConfig struct {
	StatsTTL   time.Duration `env:"STATS_CACHE_TTL" envDefault:"30s"`
	ProductTTL time.Duration `env:"PRODUCT_CACHE_TTL" envDefault:"5m"`
}

// Load builds Config from the environment, reading a local .env file first when present.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return parse(env.Options{})
}

// LoadDatabase reads only the store settings; AUTH_SECRET is not required.
func LoadDatabase() (*DatabaseConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	var cfg DatabaseConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env file: %w", err)
		}
	}
	return nil
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	return &cfg, nil
}

// IsProduction reports whether cookies must be marked Secure.
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
