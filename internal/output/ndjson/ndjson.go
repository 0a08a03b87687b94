// Package ndjson writes one JSON line per site record. Unlike the gob
// table it is collision-free: duplicate species labels stay separate
// records, distinguished by site index.
package ndjson

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mofminer/oxfeat/internal/model"
	"github.com/mofminer/oxfeat/internal/output"
)

const ext = ".jsonl"

func init() {
	output.Register("ndjson", func() output.Writer { return New() })
}

// record is the wire form of one site.
type record struct {
	Site    int        `json:"site"`
	Label   string     `json:"label"`
	Feature []float64  `json:"feature"`
	Coords  [3]float64 `json:"coords"`
}

// Writer serializes site records as NDJSON, one file per structure.
type Writer struct{}

// New creates an NDJSON Writer.
func New() *Writer { return &Writer{} }

// Write encodes the records to <dir>/<stem>.jsonl through a temp file and
// rename, mirroring the gob writer's all-or-nothing behavior.
func (w *Writer) Write(_ context.Context, dir, stem string, records []model.SiteRecord) (string, error) {
	path := filepath.Join(dir, stem+ext)

	tmp, err := os.CreateTemp(dir, stem+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("ndjson output: %w", err)
	}
	defer os.Remove(tmp.Name())

	bw := bufio.NewWriter(tmp)
	enc := json.NewEncoder(bw)
	for _, r := range records {
		if err := enc.Encode(record{
			Site:    r.Index,
			Label:   r.Label,
			Feature: r.Feature,
			Coords:  r.Coords,
		}); err != nil {
			tmp.Close()
			return "", fmt.Errorf("ndjson output: encode: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("ndjson output: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("ndjson output: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("ndjson output: rename: %w", err)
	}
	return path, nil
}
