package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLineFormat(t *testing.T) {
	src := `# bench settings
kind double
elements 1000
initial-capacity 16
verify no
unknown 1
`
	p, err := load(strings.NewReader(src), ".conf")
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != "double" || p.Elements != 1000 || p.InitialCapacity != 16 {
		t.Fatalf("unexpected properties %+v", p)
	}
	if p.Verify {
		t.Fatal("verify should be false")
	}
	if p.Rounds != 3 || p.LogLevel != "info" {
		t.Fatalf("defaults lost: %+v", p)
	}
}

func TestLoadYAML(t *testing.T) {
	src := "kind: char\nelements: 42\nverify: false\nlog-level: debug\n"
	p, err := load(strings.NewReader(src), ".yaml")
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != "char" || p.Elements != 42 || p.Verify || p.LogLevel != "debug" {
		t.Fatalf("unexpected properties %+v", p)
	}
	p, err = load(strings.NewReader(""), ".yml")
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != "int" {
		t.Fatalf("empty yaml should keep defaults, got %+v", p)
	}
}

func TestLoadTOML(t *testing.T) {
	src := "kind = \"long\"\nrounds = 7\npool-idle = 4\n"
	p, err := load(strings.NewReader(src), ".toml")
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != "long" || p.Rounds != 7 || p.PoolIdle != 4 || p.Elements != 1<<16 {
		t.Fatalf("unexpected properties %+v", p)
	}
	if _, err := load(strings.NewReader("rounds = ["), ".toml"); err == nil {
		t.Fatal("expected error for malformed toml")
	}
}

func TestSetupConfigProperties(t *testing.T) {
	defer func() {
		Properties = defaultProperties()
	}()
	name := filepath.Join(t.TempDir(), "bench.conf")
	if err := os.WriteFile(name, []byte("kind boolean\nseed 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := SetupConfigProperties(name); err != nil {
		t.Fatal(err)
	}
	if Properties.Kind != "boolean" || Properties.Seed != 9 {
		t.Fatalf("unexpected properties %+v", Properties)
	}
	if err := SetupConfigProperties(filepath.Join(t.TempDir(), "missing.conf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
