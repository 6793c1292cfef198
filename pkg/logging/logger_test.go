// pkg/logging/logger_test.go
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf)

	logger.Info(context.Background(), "tick complete", "tick", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "tick complete" {
		t.Errorf("msg = %v, expected 'tick complete'", entry["msg"])
	}
	if entry["tick"] != float64(42) {
		t.Errorf("tick = %v, expected 42", entry["tick"])
	}
}

func TestLoggerErrorIncludesError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf)

	logger.Error(context.Background(), "launch failed", errors.New("no fuel"))

	if !strings.Contains(buf.String(), "no fuel") {
		t.Errorf("error text missing from output: %s", buf.String())
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")

	wrapped := WrapError(base, "loading config %q", "game.yaml")
	if wrapped == nil {
		t.Fatalf("WrapError() = nil for non-nil error")
	}
	if !errors.Is(wrapped, base) {
		t.Errorf("wrapped error does not unwrap to the original")
	}
	if !strings.Contains(wrapped.Error(), "game.yaml") {
		t.Errorf("context missing from wrapped error: %v", wrapped)
	}
}

func TestWrapErrorNil(t *testing.T) {
	if got := WrapError(nil, "context"); got != nil {
		t.Errorf("WrapError(nil) = %v, expected nil", got)
	}
}
