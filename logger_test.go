// logger_test.go - Logger implementation tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package cfgarg

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNoopLogger_DoesNothing(t *testing.T) {
	var l noopLogger
	exit := l.Enter("f")
	l.Info("hi")
	l.Warn("hi")
	l.Error("hi")
	exit()
}

func TestSlogLogger_EnterLogsEntryAndExit(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogLogger(slog.New(handler))

	exit := l.Enter("Parse")
	exit()

	out := buf.String()
	if !strings.Contains(out, "-> Parse") {
		t.Fatalf("expected entry log, got %q", out)
	}
	if !strings.Contains(out, "<- Parse") {
		t.Fatalf("expected exit log, got %q", out)
	}
}

func TestSlogLogger_NilDefaultsToDefaultLogger(t *testing.T) {
	l := NewSlogLogger(nil)
	if l.logger == nil {
		t.Fatal("expected a non-nil default slog.Logger")
	}
}
