package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, parseLevel("warn"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestFanoutWritesToEveryHandler(t *testing.T) {
	var a, b bytes.Buffer
	h := fanout{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	l := slog.New(h).With("module", "Test")

	l.Info("hello")
	require.Contains(t, a.String(), "hello")
	require.Contains(t, a.String(), "module=Test")
	require.Empty(t, b.String())

	l.Error("boom")
	require.Contains(t, b.String(), "boom")
	require.True(t, h.Enabled(context.Background(), slog.LevelError))
	require.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
