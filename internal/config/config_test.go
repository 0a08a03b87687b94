package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Dir != "." || cfg.Output.Format != "gob" || cfg.Output.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg.Output)
	}
	if cfg.Engine.Cutoff != 0 {
		t.Errorf("Cutoff = %g, want 0 (preset)", cfg.Engine.Cutoff)
	}
}

func TestYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxfeat.yaml")
	content := `
output:
  dir: /scratch/run42
  format: ndjson
engine:
  cutoff: 5.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Dir != "/scratch/run42" {
		t.Errorf("Dir = %q", cfg.Output.Dir)
	}
	if cfg.Output.Format != "ndjson" {
		t.Errorf("Format = %q", cfg.Output.Format)
	}
	if cfg.Engine.Cutoff != 5.5 {
		t.Errorf("Cutoff = %g", cfg.Engine.Cutoff)
	}
	// Unset fields keep defaults.
	if cfg.Output.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.Output.LogLevel)
	}
}

func TestEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxfeat.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: ndjson\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OXFEAT_FORMAT", "gob")
	t.Setenv("OXFEAT_CUTOFF", "4.75")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "gob" {
		t.Errorf("Format = %q, want env override gob", cfg.Output.Format)
	}
	if cfg.Engine.Cutoff != 4.75 {
		t.Errorf("Cutoff = %g, want 4.75", cfg.Engine.Cutoff)
	}
}

func TestBadEnvFloatIgnored(t *testing.T) {
	t.Setenv("OXFEAT_CUTOFF", "not-a-number")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.Cutoff != 0 {
		t.Errorf("Cutoff = %g, want 0", cfg.Engine.Cutoff)
	}
}

func TestMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
