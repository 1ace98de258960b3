package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"days-since.db"`
	DatabaseDSN string `env:"DB_DSN"`

	RedisAddr     string `env:"REDIS_URL" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Hash argon2id del token del dispatcher. Vacío = modo dev, sin auth.
	DispatchTokenHash string `env:"DISPATCH_TOKEN_HASH"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"days-since"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load lee un .env si existe (sin pisar variables ya definidas) y parsea el entorno.
func Load(envFiles ...string) (Config, error) {
	// .env es opcional
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("%w: SQLITE_PATH is required for sqlite", ErrInvalidConfig)
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseDSN) == "" {
			return fmt.Errorf("%w: DB_DSN is required for postgres", ErrInvalidConfig)
		}
	case DriverRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("%w: REDIS_URL is required for redis", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown STORE_DRIVER %q", ErrInvalidConfig, c.StoreDriver)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
