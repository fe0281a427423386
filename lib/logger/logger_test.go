package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	if err := Setup("warn"); err != nil {
		t.Fatal(err)
	}
	Info("hidden")
	Warn("shown", "size", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "size=3") {
		t.Fatalf("expected warn message with key value, got %q", out)
	}
	if err := Setup("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	_ = Setup("info")
}
