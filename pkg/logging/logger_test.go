package logging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewWithCore(core), logs
}

func TestNewLogger(t *testing.T) {
	t.Setenv(EnvLogFormat, "json")
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.Logger == nil {
		t.Fatal("Logger.Logger is nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected zapcore.Level
	}{
		{"debug level", "DEBUG", zapcore.DebugLevel},
		{"info level", "INFO", zapcore.InfoLevel},
		{"warn level", "WARN", zapcore.WarnLevel},
		{"warning level", "WARNING", zapcore.WarnLevel},
		{"error level", "ERROR", zapcore.ErrorLevel},
		{"lowercase debug", "debug", zapcore.DebugLevel},
		{"mixed case", "Info", zapcore.InfoLevel},
		{"invalid level", "INVALID", zapcore.InfoLevel},
		{"empty value", "", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if level := parseLevel(tt.value); level != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.value, level, tt.expected)
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	logger, err := New("warn", "console")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("error should be enabled at warn level")
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, err := New("info", "json", path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info(context.Background(), "hazard destroyed", "tier", 3)
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hazard destroyed"`) {
		t.Errorf("log file = %q, want the message", data)
	}
	if !strings.Contains(string(data), `"tier":3`) {
		t.Errorf("log file = %q, want the tier field", data)
	}
}

func TestCorrelationID(t *testing.T) {
	t.Run("generate correlation ID", func(t *testing.T) {
		id1 := GenerateCorrelationID()
		id2 := GenerateCorrelationID()
		if len(id1) != 16 {
			t.Errorf("correlation ID length = %d, want 16", len(id1))
		}
		if id1 == id2 {
			t.Error("generated correlation IDs should differ")
		}
	})

	t.Run("round trip through context", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "run-1")
		if got := GetCorrelationID(ctx); got != "run-1" {
			t.Errorf("GetCorrelationID() = %q, want run-1", got)
		}
	})

	t.Run("empty ID is generated", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "")
		if GetCorrelationID(ctx) == "" {
			t.Error("expected a generated correlation ID")
		}
	})

	t.Run("missing ID", func(t *testing.T) {
		if got := GetCorrelationID(context.Background()); got != "" {
			t.Errorf("GetCorrelationID() = %q, want empty", got)
		}
	})
}

func TestLoggerMethods(t *testing.T) {
	logger, logs := newObserved(zapcore.DebugLevel)
	ctx := WithCorrelationID(context.Background(), "abc")

	logger.Debug(ctx, "debug msg", "tick", 7)
	logger.Info(ctx, "info msg", "score", 300)
	logger.Warn(ctx, "warn msg")
	logger.Error(ctx, "error msg", errors.New("boom"), "phase", "load")

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	wantLevels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, wantLevels[i])
		}
		if e.ContextMap()["correlation_id"] != "abc" {
			t.Errorf("entry %d missing correlation_id: %v", i, e.ContextMap())
		}
	}

	if got := entries[1].ContextMap()["score"]; got != int64(300) {
		t.Errorf("score field = %v (%T)", got, got)
	}
	if got := entries[3].ContextMap()["error"]; got != "boom" {
		t.Errorf("error field = %v", got)
	}
}

func TestSanitizeFields(t *testing.T) {
	logger, logs := newObserved(zapcore.InfoLevel)

	logger.Info(context.Background(), "login",
		"password", "hunter2",
		"api_token", "xyz",
		"PrivateKey", "k",
		"player", "ace",
	)

	fields := logs.AllUntimed()[0].ContextMap()
	for _, key := range []string{"password", "api_token", "PrivateKey"} {
		if fields[key] != "[REDACTED]" {
			t.Errorf("%s = %v, want [REDACTED]", key, fields[key])
		}
	}
	if fields["player"] != "ace" {
		t.Errorf("player = %v, want ace", fields["player"])
	}
}

func TestBadKeys(t *testing.T) {
	logger, logs := newObserved(zapcore.InfoLevel)

	logger.Info(context.Background(), "odd", "lonely")
	logger.Info(context.Background(), "nonstring", 42, "x")

	for i, e := range logs.AllUntimed() {
		if _, ok := e.ContextMap()["!BADKEY"]; !ok {
			t.Errorf("entry %d: expected !BADKEY field, got %v", i, e.ContextMap())
		}
	}
}

func TestWith(t *testing.T) {
	logger, logs := newObserved(zapcore.InfoLevel)

	logger.With("component", "engine", "secret", "s").Info(context.Background(), "started")

	fields := logs.AllUntimed()[0].ContextMap()
	if fields["component"] != "engine" || fields["secret"] != "[REDACTED]" {
		t.Errorf("fields = %v", fields)
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("disk full")

	tests := []struct {
		name     string
		err      error
		context  string
		args     []any
		expected string
	}{
		{"nil error", nil, "ctx", nil, ""},
		{"plain context", base, "save config", nil, "save config: disk full"},
		{"formatted context", base, "save %s", []any{"game.toml"}, "save game.toml: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err, tt.context, tt.args...)
			if tt.err == nil {
				if got != nil {
					t.Errorf("WrapError(nil) = %v", got)
				}
				return
			}
			if got.Error() != tt.expected {
				t.Errorf("WrapError() = %q, want %q", got.Error(), tt.expected)
			}
			if !errors.Is(got, base) {
				t.Error("wrapped error lost its cause")
			}
		})
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info(context.Background(), "dropped", "k", "v")
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger should not enable any level")
	}
}
