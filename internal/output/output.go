// Package output persists featurization results. Formats register
// themselves by name; the pipeline resolves one by the configured format
// string.
package output

import (
	"context"
	"fmt"
	"sort"

	"github.com/mofminer/oxfeat/internal/model"
)

// Writer persists the featurization result of one structure.
type Writer interface {
	// Write serializes the records for the structure named by stem into
	// dir and returns the path of the written file.
	Write(ctx context.Context, dir, stem string, records []model.SiteRecord) (string, error)
}

// Constructor creates a new Writer instance.
type Constructor func() Writer

var registry = map[string]Constructor{}

// Register adds a writer constructor under the given format name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the writer constructor for the given format name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s (have %v)", name, Formats())
	}
	return ctor, nil
}

// Formats returns the names of all registered output formats, sorted.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
