package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := Module{}.Logger(&buf)
	logger.Info("hello", "key", "value")
	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Fatalf("missing message: %q", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Fatalf("missing attr: %q", out)
	}
}

func TestLoggerLevel(t *testing.T) {
	prev := level.Level()
	defer level.Set(prev)

	var buf bytes.Buffer
	logger := Module{}.Logger(&buf)

	level.Set(slog.LevelWarn)
	logger.Info("suppressed")
	if strings.Contains(buf.String(), "suppressed") {
		t.Fatalf("info passed warn level: %q", buf.String())
	}

	level.Set(slog.LevelDebug)
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("debug suppressed: %q", buf.String())
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("run.source"); got != "RUN_SOURCE" {
		t.Fatalf("got %q", got)
	}
}
