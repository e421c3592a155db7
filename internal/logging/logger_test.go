package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLoggerDefaults(t *testing.T) {
	logger := NewLogger(Config{})
	if logger == nil {
		t.Fatal("expected a logger")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info level to be enabled by default")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level to be disabled by default")
	}
}

func TestNewLoggerParsesLevel(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"bogus", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tc := range tests {
		logger := NewLogger(Config{Level: tc.level, Format: "json"})
		if !logger.Enabled(context.Background(), tc.enabled) {
			t.Fatalf("level %q: expected %v to be enabled", tc.level, tc.enabled)
		}
		if logger.Enabled(context.Background(), tc.muted) {
			t.Fatalf("level %q: expected %v to be muted", tc.level, tc.muted)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	fallback := NewLogger(Config{})
	scoped := fallback.With(slog.String(FieldRequestID, "abc"))

	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatal("expected the scoped logger back")
	}
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected the fallback when nothing is stored")
	}
}
