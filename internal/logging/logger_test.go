package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))
	logger = NewComponentLogger(logger, "resolver")

	logger.Info("nominee resolved",
		String(FieldTitle, "Oppenheimer"),
		Int(FieldYear, 2023))

	out := buf.String()
	if !strings.Contains(out, "[resolver] nominee resolved") {
		t.Fatalf("missing component/message, got %q", out)
	}
	if !strings.Contains(out, "- title: Oppenheimer") || !strings.Contains(out, "- year: 2023") {
		t.Fatalf("missing fields, got %q", out)
	}

	buf.Reset()
	logger.Debug("hidden at info level")
	if buf.Len() != 0 {
		t.Fatalf("debug output must be suppressed at info level, got %q", buf.String())
	}
}

func TestJSONHandlerFieldNames(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, levelVar))

	logger.Warn("lookup failed", Error(nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if line["msg"] != "lookup failed" {
		t.Fatalf("expected msg key, got %+v", line)
	}
	if line["level"] != "warn" {
		t.Fatalf("expected lowercase level, got %+v", line)
	}
	if _, ok := line["ts"]; !ok {
		t.Fatalf("expected ts key, got %+v", line)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(nil, slog.LevelError) {
		t.Fatal("no-op logger must report disabled")
	}
}
