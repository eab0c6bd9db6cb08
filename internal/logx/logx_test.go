package logx

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "info", Output: &buf})

	l.Debugf("hidden %d", 1)
	l.With("session", "brave-otter").Infof("clicked %s", "e2")
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %s", out)
	}
	if !strings.Contains(out, `"MESSAGE":"clicked e2"`) {
		t.Errorf("missing message in output: %s", out)
	}
	if !strings.Contains(out, `"session":"brave-otter"`) {
		t.Errorf("missing field in output: %s", out)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Errorf("nothing %v", 1)
	if err := l.With("a", 1).Sync(); err != nil {
		t.Errorf("Nop Sync returned %v", err)
	}
}
