package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string   `env:"APP_PORT" envDefault:"8080"`
	JWTSecret     string   `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiresMin int      `env:"JWT_EXPIRES_MIN" envDefault:"10080"`
	CookieSecure  bool     `env:"COOKIE_SECURE" envDefault:"false"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://127.0.0.1:3000,http://localhost:3000"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	EnableSeed bool `env:"ENABLE_SEED" envDefault:"false"`
}

// Load reads the optional .env files, then the environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTExpiresMin <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRES_MIN must be positive, got %d", cfg.JWTExpiresMin)
	}
	return cfg, nil
}

func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c Config) RedisEnabled() bool { return c.RedisAddr != "" }
