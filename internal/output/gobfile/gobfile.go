// Package gobfile writes the label-keyed feature table as a single gob
// blob. No schema, no versioning, no compression; the file keeps the
// .pkl suffix existing mining directories expect.
package gobfile

import (
	"bufio"
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mofminer/oxfeat/internal/model"
	"github.com/mofminer/oxfeat/internal/output"
)

const ext = ".pkl"

func init() {
	output.Register("gob", func() output.Writer { return New() })
}

// Writer serializes one feature table per structure.
type Writer struct{}

// New creates a gob Writer.
func New() *Writer { return &Writer{} }

// Write folds the records into the label-keyed table (last site per label
// wins, the inherited collision) and gob-encodes it to <dir>/<stem>.pkl.
// The file is written via a temp name and renamed so a failed run never
// leaves a partial output behind.
func (w *Writer) Write(_ context.Context, dir, stem string, records []model.SiteRecord) (string, error) {
	path := filepath.Join(dir, stem+ext)

	tmp, err := os.CreateTemp(dir, stem+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("gob output: %w", err)
	}
	defer os.Remove(tmp.Name())

	bw := bufio.NewWriter(tmp)
	if err := gob.NewEncoder(bw).Encode(model.TableFromRecords(records)); err != nil {
		tmp.Close()
		return "", fmt.Errorf("gob output: encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("gob output: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("gob output: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("gob output: rename: %w", err)
	}
	return path, nil
}

// Read loads a feature table written by Write. The predict command uses it
// to feed serialized features back into the model.
func Read(path string) (model.FeatureTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gob output: %w", err)
	}
	defer f.Close()

	var table model.FeatureTable
	if err := gob.NewDecoder(bufio.NewReader(f)).Decode(&table); err != nil {
		return nil, fmt.Errorf("gob output: decode %s: %w", path, err)
	}
	return table, nil
}
