package ndjson

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mofminer/oxfeat/internal/model"
	"github.com/mofminer/oxfeat/internal/output"
)

func TestWriteKeepsDuplicateLabels(t *testing.T) {
	dir := t.TempDir()
	records := []model.SiteRecord{
		{Index: 0, Label: "Cu", Feature: []float64{1}, Coords: [3]float64{1, 0, 0}},
		{Index: 3, Label: "Cu", Feature: []float64{2}, Coords: [3]float64{2, 0, 0}},
	}

	path, err := New().Write(context.Background(), dir, "dupes", records)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasSuffix(path, "dupes.jsonl") {
		t.Errorf("path = %q, want *.jsonl", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (no label collision in NDJSON)", len(lines))
	}
	var rec record
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("line 1: %v", err)
	}
	if rec.Site != 3 || rec.Label != "Cu" || rec.Feature[0] != 2 {
		t.Errorf("line 1 = %+v, want site 3 Cu [2]", rec)
	}
}

func TestWriteEmpty(t *testing.T) {
	dir := t.TempDir()
	path, err := New().Write(context.Background(), dir, "empty", nil)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty file, got %d bytes", len(data))
	}
}

func TestRegistered(t *testing.T) {
	if _, err := output.Get("ndjson"); err != nil {
		t.Fatalf("Get(ndjson): %v", err)
	}
	if _, err := output.Get("parquet"); err == nil {
		t.Error("Get(parquet) should fail")
	}
}
