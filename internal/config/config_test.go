package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.UsersBaseURL)
	assert.Equal(t, "https://dummyjson.com", cfg.ProductsBaseURL)
	assert.Equal(t, 20, cfg.TodoLimit)
	assert.Equal(t, 100, cfg.ProductLimit)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, "classic", cfg.Theme)
	assert.Empty(t, cfg.LogFile)
}

func TestOverridesAndSanitize(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"TADA_USERS_BASE_URL":    " http://localhost:8080/ ",
		"TADA_PRODUCTS_BASE_URL": "",
		"TADA_TODO_LIMIT":        "-3",
		"TADA_PRODUCT_LIMIT":     "5",
		"TADA_LOG_LEVEL":         "DEBUG",
		"TADA_THEME":             "Neon",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.UsersBaseURL)
	assert.Equal(t, "https://dummyjson.com", cfg.ProductsBaseURL)
	assert.Equal(t, 20, cfg.TodoLimit)
	assert.Equal(t, 5, cfg.ProductLimit)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "neon", cfg.Theme)
}

func TestBadNumber(t *testing.T) {
	_, err := FromMap(map[string]string{"TADA_TODO_LIMIT": "twenty"})
	require.Error(t, err)
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "warn": slog.LevelWarn, "warning": slog.LevelWarn,
		"error": slog.LevelError, "info": slog.LevelInfo, "loud": slog.LevelInfo,
	} {
		assert.Equal(t, want, Config{LogLevel: in}.Level(), in)
	}
}

func TestLoadReadsProcessEnv(t *testing.T) {
	t.Setenv("TADA_PRODUCT_LIMIT", "12")
	t.Setenv("TADA_THEME", "mono")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.ProductLimit)
	assert.Equal(t, "mono", cfg.Theme)
}
