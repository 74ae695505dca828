package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// TestLogger_IncludesOperationFields verifies the operation label is present.
func TestLogger_IncludesOperationFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	opLogger := logger.WithOperation("userprofile", "byProfileId")
	opLogger.Info(context.Background(), "test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v\nOutput: %s", err, buf.String())
	}

	if v, ok := logEntry["op.category"].(string); !ok || v != "userprofile" {
		t.Errorf("expected op.category='userprofile', got %v", logEntry["op.category"])
	}
	if v, ok := logEntry["op.name"].(string); !ok || v != "byProfileId" {
		t.Errorf("expected op.name='byProfileId', got %v", logEntry["op.name"])
	}
	if v, ok := logEntry["msg"].(string); !ok || v != "test message" {
		t.Errorf("expected msg='test message', got %v", logEntry["msg"])
	}
}

// TestLogger_LevelFiltering verifies lines below the configured level are dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("warn", &buf)

	logger.Debug(context.Background(), "debug message")
	logger.Info(context.Background(), "info message")
	logger.Warn(context.Background(), "warn message")
	logger.Error(context.Background(), "error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "warn message") {
		t.Errorf("first line should be the warn message, got: %s", lines[0])
	}
	if !strings.Contains(lines[1], "error message") {
		t.Errorf("second line should be the error message, got: %s", lines[1])
	}
}

// TestLogger_RedactsSensitiveFields verifies credential fields are redacted.
func TestLogger_RedactsSensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "auth attempt",
		Field{Key: "token", Value: "super-secret"},
		Field{Key: "attempt", Value: 1},
	)

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}

	if v := logEntry["token"]; v != "[REDACTED]" {
		t.Errorf("expected token to be redacted, got %v", v)
	}
	if v, ok := logEntry["attempt"].(float64); !ok || v != 1 {
		t.Errorf("expected attempt=1, got %v", logEntry["attempt"])
	}
}

// TestLogger_DerivedLoggerKeepsLevel verifies WithOperation preserves level filtering.
func TestLogger_DerivedLoggerKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("error", &buf)

	opLogger := logger.WithOperation("cat", "op")
	opLogger.Info(context.Background(), "should be dropped")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got: %s", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()

	// Must be inert and must not panic.
	l.Info(context.Background(), "msg")
	l.Warn(context.Background(), "msg")
	l.Error(context.Background(), "msg")
	l.Debug(context.Background(), "msg")

	if derived := l.WithOperation("a", "b"); derived == nil {
		t.Error("WithOperation should return a logger")
	}
}
