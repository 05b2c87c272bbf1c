package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/crastudio/crastudio/internal/config"
)

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")

	logger.Slog().Info("started", slog.String("component", "api"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "started" {
		t.Errorf("msg = %v, want 'started'", entry["msg"])
	}
	if entry["component"] != "api" {
		t.Errorf("component = %v, want 'api'", entry["component"])
	}
}

func TestNewLoggerWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatPretty, "WARN")

	logger.Slog().Info("suppressed")
	if buf.Len() != 0 {
		t.Errorf("INFO at WARN level wrote %q", buf.String())
	}

	logger.Slog().Warn("kept")
	if buf.Len() == 0 {
		t.Error("WARN at WARN level wrote nothing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")

	logger.With(slog.String("request_id", "abc")).Slog().Info("handled")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["request_id"] != "abc" {
		t.Errorf("request_id = %v, want 'abc'", entry["request_id"])
	}
}
