// Package config loads planner settings from the environment and an
// optional .env file
package config

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/wotr-planner/internal/errors"
)

// Storage selects where saved builds live
type Storage string

const (
	StorageNone   Storage = "none"
	StorageSQLite Storage = "sqlite"
	StorageRedis  Storage = "redis"
)

// Config holds every setting the planner reads from the environment
type Config struct {
	DataDir      string  `env:"WOTR_DATA_DIR"      envDefault:"data"`
	Storage      Storage `env:"WOTR_STORAGE"       envDefault:"sqlite"`
	SQLitePath   string  `env:"WOTR_SQLITE_PATH"   envDefault:"wotr-planner.db"`
	RedisAddr    string  `env:"WOTR_REDIS_ADDR"    envDefault:"localhost:6379"`
	LogLevel     string  `env:"WOTR_LOG_LEVEL"     envDefault:"warn"`
	DefaultRace  string  `env:"WOTR_DEFAULT_RACE"`
	DefaultClass string  `env:"WOTR_DEFAULT_CLASS"`
}

// Load reads the given .env files, or ./.env when none are named, and then
// parses the environment. Missing .env files are skipped; variables already
// set in the environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				slog.Debug("no env file", "path", file)
				continue
			}
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read env file").
				WithMeta("path", file)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the storage selection and log level
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.DataDir == "" {
		vb.RequiredField("DataDir")
	}
	switch c.Storage {
	case StorageNone:
	case StorageSQLite:
		if c.SQLitePath == "" {
			vb.RequiredField("SQLitePath")
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			vb.RequiredField("RedisAddr")
		}
	default:
		vb.InvalidField("Storage", "must be one of none, sqlite, redis")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", err.Error())
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, falling back to warn
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLevel accepts debug, info, warn or error in any case
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}
