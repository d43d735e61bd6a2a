package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]Level{
		"":        LevelInfo,
		"DEBUG":   LevelDebug,
		"warning": LevelWarn,
		" error ": LevelError,
	}
	for raw, want := range tests {
		got, err := ParseLevel(raw)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q): expected %s, got=%s", raw, want, got)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected unsupported level error")
	}
}

func TestLogger_FieldsAndErrors(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core)).With("component", "importer")

	logger.Warn("skip match", "match_id", "NA1_1", "error", errors.New("schema"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "importer" || fields["match_id"] != "NA1_1" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
	if fields["error"] != "schema" {
		t.Fatalf("expected error field to be flattened, got=%v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected odd trailing key to be kept")
	}
}

func TestLogger_ContextWithoutSpan(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core))
	logger.InfoContext(context.Background(), "window imported", "count", 30)

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Fatalf("expected no trace fields without a span")
	}
}

func TestNew_WritesJSONToOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf})
	logger.Debug("hidden")
	logger.Info("shown", "region", "americas")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug line to be filtered: %s", out)
	}
	if !strings.Contains(out, `"region":"americas"`) || !strings.Contains(out, `"level":"INFO"`) {
		t.Fatalf("unexpected json output: %s", out)
	}
}
