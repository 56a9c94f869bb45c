package logging

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"info":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"trace":   LevelTrace,
		"Trace":   LevelTrace,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", &buf)

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be suppressed at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message should appear at info level")
	}
}

func TestNewLoggerTraceLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("trace", &buf)

	logger.Log(context.Background(), LevelTrace, "deep detail")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE level label, got: %s", buf.String())
	}
}

func TestNewTraceLogger_InfoLevelDisabled(t *testing.T) {
	if tl := NewTraceLogger(t.TempDir(), "info"); tl != nil {
		t.Error("expected nil trace logger at info level")
	}
}

func TestTraceLoggerNilSafe(t *testing.T) {
	var tl *TraceLogger
	tl.Log(map[string]any{"k": "v"}) // must not panic
	tl.Close()
}

func TestTraceLoggerWritesJSONL(t *testing.T) {
	dir := t.TempDir()
	tl := NewTraceLogger(dir, "debug")
	if tl == nil {
		t.Fatal("expected trace logger at debug level")
	}
	defer tl.Close()

	tl.Log(map[string]any{"id": "c-1", "recommendation": "YES"})
	tl.Log(map[string]any{"id": "c-2", "recommendation": "NO"})

	f, err := os.Open(filepath.Join(dir, "consultations.jsonl"))
	if err != nil {
		t.Fatalf("trace file not created: %v", err)
	}
	defer f.Close()

	var count int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", count+1, err)
		}
		if _, ok := entry["time"]; !ok {
			t.Errorf("line %d missing time field", count+1)
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 trace lines, got %d", count)
	}
}

func TestTraceLoggerDoesNotMutateCaller(t *testing.T) {
	dir := t.TempDir()
	tl := NewTraceLogger(dir, "debug")
	if tl == nil {
		t.Fatal("expected trace logger at debug level")
	}
	defer tl.Close()

	event := map[string]any{"id": "c-1"}
	tl.Log(event)

	if _, ok := event["time"]; ok {
		t.Error("Log mutated the caller's event map")
	}
}
