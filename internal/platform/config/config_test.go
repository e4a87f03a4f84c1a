package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("KEYMINT_GRPC_ADDR", "")
	t.Setenv("KEYMINT_HTTP_ADDR", "")
	t.Setenv("KEYMINT_LOG_LEVEL", "")

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.GRPCAddr)
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("KEYMINT_GRPC_ADDR", "127.0.0.1:7000")
	t.Setenv("KEYMINT_HTTP_ADDR", "127.0.0.1:7001")
	t.Setenv("KEYMINT_LOG_LEVEL", "debug")

	cfg := FromEnv()
	assert.Equal(t, "127.0.0.1:7000", cfg.GRPCAddr)
	assert.Equal(t, "127.0.0.1:7001", cfg.HTTPAddr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.raw), "raw=%q", tt.raw)
	}
}
