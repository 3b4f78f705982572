package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/cocodas/prier-backend/internal/config"
)

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "json"}, true))

	logger.Info("comment.created", slog.String("project_id", "p1"))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("JSON handler should produce valid JSON: %v", err)
	}
	if m["msg"] != "comment.created" || m["project_id"] != "p1" {
		t.Errorf("unexpected entry: %v", m)
	}
	if _, ok := m["source"]; ok {
		t.Error("json format should not include source")
	}
}

func TestNewHandler_TextIsTintWithSource(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, config.LogConfig{Level: "info", Format: "text"}, true))

	logger.Info("hello", slog.Int("count", 3))

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "count=3") {
		t.Errorf("unexpected text output: %q", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("text format should include source, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("NoColor output should not contain ANSI escapes: %q", out)
	}
}

func TestNewHandler_Levels(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		for _, format := range []string{"text", "json"} {
			t.Run(format+"_level_"+tt.level, func(t *testing.T) {
				var buf bytes.Buffer
				logger := slog.New(newHandler(&buf, config.LogConfig{Level: tt.level, Format: format}, true))

				logger.Log(context.TODO(), tt.wantSlog, "should appear")
				if buf.Len() == 0 {
					t.Errorf("expected log output at level %v", tt.wantSlog)
				}

				buf.Reset()
				logger.Log(context.TODO(), tt.wantSlog-1, "should be suppressed")
				if buf.Len() != 0 {
					t.Errorf("level %v should suppress level %v, got: %s", tt.wantSlog, tt.wantSlog-1, buf.String())
				}
			})
		}
	}
}
