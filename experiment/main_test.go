package main

import (
	"context"
	"io"
	"testing"

	"primcoll/config"
	"primcoll/lib/logger"
)

func TestScenarios(t *testing.T) {
	logger.SetOutput(io.Discard)
	if err := runScenarios(); err != nil {
		t.Fatal(err)
	}
}

func TestBenchAllKinds(t *testing.T) {
	logger.SetOutput(io.Discard)
	kinds := []string{"boolean", "byte", "char", "short", "int", "long", "float", "double"}
	for _, kind := range kinds {
		p := *config.Properties
		p.Kind = kind
		p.Elements = 500
		p.Rounds = 2
		p.Verify = true
		if err := bench(context.Background(), &p); err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
	}
}

func TestBenchUnknownKind(t *testing.T) {
	p := *config.Properties
	p.Kind = "complex"
	if err := bench(context.Background(), &p); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
