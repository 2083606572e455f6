// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func captureInit(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg.Output = &buf
	Init(cfg)
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("no log output")
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, line)
	}
	return entry
}

func TestInit_JSONOutput(t *testing.T) {
	buf := captureInit(t, Config{Level: "info", Format: "json", Timestamp: true})

	Info().Int("round", 1190).Msg("Round fetched")

	entry := decodeLine(t, buf)
	if entry["message"] != "Round fetched" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["round"] != float64(1190) {
		t.Errorf("round = %v, want 1190", entry["round"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected time field")
	}
	if entry["app"] != "lottopick" {
		t.Errorf("app = %v, want lottopick", entry["app"])
	}
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	buf := captureInit(t, Config{Level: "verbose", Format: "json"})

	Debug().Msg("hidden")
	Info().Msg("shown")

	entry := decodeLine(t, buf)
	if entry["message"] != "shown" {
		t.Errorf("message = %v, want shown", entry["message"])
	}
}

func TestWithComponent(t *testing.T) {
	buf := captureInit(t, Config{Level: "info", Format: "json"})

	l := WithComponent("sync")
	l.Info().Msg("component line")

	entry := decodeLine(t, buf)
	if entry["component"] != "sync" {
		t.Errorf("component = %v, want sync", entry["component"])
	}
}

func TestInit_LevelFilters(t *testing.T) {
	buf := captureInit(t, Config{Level: "warn", Format: "json"})

	Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info message emitted at warn level: %q", buf.String())
	}

	Warn().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn message not emitted")
	}
}

func TestInit_ConsoleFormat(t *testing.T) {
	buf := captureInit(t, Config{Level: "info", Format: "console"})

	Info().Msg("console line")

	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("console format produced JSON: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "console line") {
		t.Errorf("missing message in %q", buf.String())
	}
}

func TestValidLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "INFO", "warn", "error"} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = false", level)
		}
	}
	if ValidLevel("verbose") {
		t.Error("ValidLevel(verbose) = true")
	}
}

func TestCtx_AddsCorrelationAndRequestID(t *testing.T) {
	buf := captureInit(t, Config{Level: "info", Format: "json"})

	ctx := ContextWithCorrelationID(context.Background(), "abcd1234")
	ctx = ContextWithRequestID(ctx, "req-1")
	Ctx(ctx).Info().Msg("with ids")

	entry := decodeLine(t, buf)
	if entry["correlation_id"] != "abcd1234" {
		t.Errorf("correlation_id = %v", entry["correlation_id"])
	}
	if entry["request_id"] != "req-1" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
}

func TestGenerateCorrelationID(t *testing.T) {
	a, b := GenerateCorrelationID(), GenerateCorrelationID()
	if len(a) != 8 {
		t.Errorf("len = %d, want 8", len(a))
	}
	if a == b {
		t.Error("correlation IDs should differ")
	}
	if id := CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("empty context returned %q", id)
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))

	logger.WithGroup("service").Warn("restarting", "name", "sync-manager", "attempt", 2)

	entry := decodeLine(t, &buf)
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
	if entry["service.name"] != "sync-manager" {
		t.Errorf("service.name = %v", entry["service.name"])
	}
	if entry["service.attempt"] != float64(2) {
		t.Errorf("service.attempt = %v", entry["service.attempt"])
	}
}
