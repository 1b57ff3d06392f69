package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, "json", slog.LevelInfo))

	l.Debug("hidden")
	l.Info("visible", "result_id", "abc")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "visible", rec["msg"])
	require.Equal(t, "abc", rec["result_id"])
}

func TestNewHandlerPretty(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, "pretty", slog.LevelDebug))
	l.Info("hello", "k", "v")
	require.Contains(t, buf.String(), "hello")
}

func TestContextLogger(t *testing.T) {
	require.Same(t, Logger, From(context.Background()))

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "r-1")
	ctx := Into(context.Background(), l)

	From(ctx).Info("x")
	require.Contains(t, buf.String(), "request_id=r-1")
}
