// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitcalc/unitcalc/internal/config"
	"github.com/unitcalc/unitcalc/internal/platform/logger"
)

// restoreDefault resets slog's default logger after a test calls Setup.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
	})
}

// parseLogEntries parses newline-delimited JSON log output.
func parseLogEntries(t *testing.T, out string) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "Failed to parse log line %q", line)
		entries = append(entries, entry)
	}
	return entries
}

// TestValidLogLevelParsing tests that each supported level filters records below it.
func TestValidLogLevelParsing(t *testing.T) {
	restoreDefault(t)

	tests := []struct {
		level    string
		enabled  slog.Level
		disabled slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"WARN", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := logger.Setup(config.LogConfig{Level: tt.level, Format: "json"}, &buf)
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.enabled))
			assert.False(t, log.Enabled(ctx, tt.disabled))
			assert.Same(t, log, slog.Default())
		})
	}
}

// TestInvalidLogLevelParsing tests that an invalid level falls back to info
// and logs a warning.
func TestInvalidLogLevelParsing(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	log, err := logger.Setup(config.LogConfig{Level: "chatty", Format: "json"}, &buf)
	require.NoError(t, err)

	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))

	entries := parseLogEntries(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "chatty", entries[0]["configured_level"])
	assert.Equal(t, "info", entries[0]["default_level"])
}

func TestTextFormat(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	log, err := logger.Setup(config.LogConfig{Level: "info", Format: "text"}, &buf)
	require.NoError(t, err)

	log.Info("converted", "unit", "METER")
	assert.Contains(t, buf.String(), "msg=converted unit=METER")
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid_logger", func(t *testing.T) {
		t.Parallel()
		customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)
		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestWithRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := logger.WithRunID(context.Background(), base)
	runID := logger.RunID(ctx)
	_, err := uuid.Parse(runID)
	require.NoError(t, err, "run id should be a UUID")

	logger.FromContext(ctx).Info("simplified")

	entries := parseLogEntries(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, runID, entries[0]["run_id"])

	other := logger.WithRunID(context.Background(), base)
	assert.NotEqual(t, runID, logger.RunID(other))
	assert.Empty(t, logger.RunID(context.Background()))
}
