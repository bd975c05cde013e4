package logger

import (
	"bytes"
	"context"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewLogger(TestConfig())
		ctx := ContextWithLogger(context.Background(), expected)

		assert.Equal(t, expected, FromContext(ctx))
	})

	t.Run("Should return default logger when no logger in context", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.Equal(t, GetDefault(), l)
	})

	t.Run("Should return default logger when wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), LoggerCtxKey, "not a logger")
		assert.Equal(t, GetDefault(), FromContext(ctx))
	})
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	testCases := []struct {
		level    LogLevel
		expected charmlog.Level
	}{
		{DebugLevel, charmlog.DebugLevel},
		{InfoLevel, charmlog.InfoLevel},
		{WarnLevel, charmlog.WarnLevel},
		{ErrorLevel, charmlog.ErrorLevel},
		{LogLevel("bogus"), charmlog.InfoLevel},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.level.ToCharmlogLevel(), string(tc.level))
	}
}

func TestNewLogger_Output(t *testing.T) {
	t.Run("Should write text with key values", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := TestConfig()
		cfg.Output = &buf

		NewLogger(cfg).With("article", "decks").Info("posted", "messages", 3)

		out := buf.String()
		assert.Contains(t, out, "posted")
		assert.Contains(t, out, "article=decks")
		assert.Contains(t, out, "messages=3")
	})

	t.Run("Should write JSON when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := TestConfig()
		cfg.Output = &buf
		cfg.JSON = true

		NewLogger(cfg).Warn("slow")

		assert.Contains(t, buf.String(), `"msg":"slow"`)
	})

	t.Run("Should drop messages below level", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := TestConfig()
		cfg.Output = &buf
		cfg.Level = ErrorLevel

		NewLogger(cfg).Info("hidden")

		assert.Empty(t, buf.String())
	})
}

func TestGetLoggerConfig(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("log-level", "info", "")
	cmd.Flags().Bool("log-json", false, "")
	cmd.Flags().Bool("log-source", false, "")
	require.NoError(t, cmd.Flags().Set("log-level", "debug"))
	require.NoError(t, cmd.Flags().Set("log-json", "true"))

	level, asJSON, source, err := GetLoggerConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "debug", level)
	assert.True(t, asJSON)
	assert.False(t, source)
}
