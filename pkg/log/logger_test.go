package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Warning)
	logger.Info("hidden message")
	logger.Warning("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("Info message should be filtered at Warning level: %q", out)
	}
	if !strings.Contains(out, "visible message") {
		t.Errorf("Warning message missing from output: %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output: %q", out)
	}
}

func TestSetSinkPreservesLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(Debug)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	var second bytes.Buffer
	SetSink(&second)
	New("test").Debugf("debug %d", 42)

	if !strings.Contains(second.String(), "debug 42") {
		t.Errorf("Debug level lost after SetSink: %q", second.String())
	}
}

func TestSetLevelIgnoresUnknownLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	logger := New("test")
	SetLevel(Warning)

	for _, level := range []Level{Level(-1), Level(42)} {
		SetLevel(level)
		logger.Info("info after unknown level")
		logger.Warning("warning after unknown level")
	}

	out := buf.String()
	if strings.Contains(out, "info after unknown level") {
		t.Errorf("Unknown level changed verbosity: %q", out)
	}
	if got := strings.Count(out, "warning after unknown level"); got != 2 {
		t.Errorf("Expected 2 warnings, got %d: %q", got, out)
	}
}
