// Package config loads the runtime settings from the environment.
//
// Configuration is read with github.com/caarlos0/env after an optional .env
// file has been loaded. Command-line flags override what is read here.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Makepad-fr/tada/internal/api"
)

type Config struct {
	// UsersBaseURL serves both /users and /todos.
	UsersBaseURL    string `env:"TADA_USERS_BASE_URL" envDefault:"https://jsonplaceholder.typicode.com"`
	ProductsBaseURL string `env:"TADA_PRODUCTS_BASE_URL" envDefault:"https://dummyjson.com"`

	TodoLimit    int `env:"TADA_TODO_LIMIT" envDefault:"20"`
	ProductLimit int `env:"TADA_PRODUCT_LIMIT" envDefault:"100"`

	LogLevel string `env:"TADA_LOG_LEVEL" envDefault:"info"`
	// LogFile receives logs while the interactive UI owns the terminal.
	LogFile string `env:"TADA_LOG_FILE"`

	Theme string `env:"TADA_THEME" envDefault:"classic"`
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	return FromMap(environ())
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}

// FromMap parses cfg from the given variables only.
func FromMap(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.Sanitize()
	return cfg, nil
}

// Sanitize applies guardrails to values loaded from env.
func (c *Config) Sanitize() {
	c.UsersBaseURL = strings.TrimRight(strings.TrimSpace(c.UsersBaseURL), "/")
	c.ProductsBaseURL = strings.TrimRight(strings.TrimSpace(c.ProductsBaseURL), "/")
	if c.UsersBaseURL == "" {
		c.UsersBaseURL = api.DefaultUsersBaseURL
	}
	if c.ProductsBaseURL == "" {
		c.ProductsBaseURL = api.DefaultProductsBaseURL
	}
	if c.TodoLimit <= 0 {
		c.TodoLimit = api.DefaultTodoLimit
	}
	if c.ProductLimit <= 0 {
		c.ProductLimit = api.DefaultProductLimit
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
}

// Level maps LogLevel to a slog level; unknown values mean info.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
