package gobfile

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mofminer/oxfeat/internal/model"
	"github.com/mofminer/oxfeat/internal/output"
)

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	records := []model.SiteRecord{
		{Index: 1, Label: "Cu", Feature: []float64{1, 2, 3}, Coords: [3]float64{0.5, 0, 0}},
		{Index: 4, Label: "Zn", Feature: []float64{4, 5, 6}, Coords: [3]float64{0, 0.5, 0}},
	}

	path, err := New().Write(context.Background(), dir, "mof", records)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if want := dir + "/mof.pkl"; path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	table, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := model.FeatureTable{
		"Cu": {Feature: []float64{1, 2, 3}, Coords: [3]float64{0.5, 0, 0}},
		"Zn": {Feature: []float64{4, 5, 6}, Coords: [3]float64{0, 0.5, 0}},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCollisionLastWins(t *testing.T) {
	dir := t.TempDir()
	records := []model.SiteRecord{
		{Index: 0, Label: "Cu", Feature: []float64{1}, Coords: [3]float64{1, 0, 0}},
		{Index: 3, Label: "Cu", Feature: []float64{2}, Coords: [3]float64{2, 0, 0}},
	}

	path, err := New().Write(context.Background(), dir, "dupes", records)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	table, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("got %d entries, want 1", len(table))
	}
	if got := table["Cu"].Feature[0]; got != 2 {
		t.Errorf("Cu feature = %g, want 2 (last site wins)", got)
	}
}

func TestWriteEmptyTable(t *testing.T) {
	dir := t.TempDir()
	path, err := New().Write(context.Background(), dir, "nometals", nil)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	table, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("got %d entries, want empty table", len(table))
	}
}

func TestRegistered(t *testing.T) {
	ctor, err := output.Get("gob")
	if err != nil {
		t.Fatalf("Get(gob): %v", err)
	}
	if ctor() == nil {
		t.Fatal("constructor returned nil")
	}
}
