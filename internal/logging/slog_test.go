package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/placer/types"
)

func newBufferedLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestSlogLogger_ImplementsInterface(t *testing.T) {
	var logger types.Logger = NewSlogDefault()
	require.NotNil(t, logger)
}

func TestSlogLogger_LevelsAndFields(t *testing.T) {
	logger, buf := newBufferedLogger(slog.LevelDebug)

	logger.Debug("debug message", "key", "value")
	require.Contains(t, buf.String(), "debug message")
	require.Contains(t, buf.String(), "key=value")

	buf.Reset()
	logger.Info("info message", "count", 3)
	require.Contains(t, buf.String(), "info message")
	require.Contains(t, buf.String(), "count=3")

	buf.Reset()
	logger.Warn("warn message")
	require.Contains(t, buf.String(), "warn message")

	buf.Reset()
	logger.Error("error message", "error", "boom")
	require.Contains(t, buf.String(), "error message")
	require.Contains(t, buf.String(), "error=boom")
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	logger, buf := newBufferedLogger(slog.LevelInfo)

	logger.Debug("should not appear")
	require.Empty(t, buf.String())
}
