// Package featurize computes local-environment descriptor vectors for
// individual sites of a periodic structure: a fixed recipe of five
// descriptors concatenated into one flat vector, with all parameters preset.
package featurize

import (
	"fmt"

	"github.com/mofminer/oxfeat/internal/structure"
)

// SiteFeaturizer computes a fixed-length descriptor vector for one site.
type SiteFeaturizer interface {
	// Labels names the vector components, in output order.
	Labels() []string
	// Featurize computes the descriptor for site i of s.
	Featurize(s *structure.Structure, i int) ([]float64, error)
}

// Multi concatenates the outputs of several featurizers in fixed order.
type Multi struct {
	featurizers []SiteFeaturizer
}

// NewMulti creates a Multi over the given featurizers.
func NewMulti(fs ...SiteFeaturizer) *Multi {
	return &Multi{featurizers: fs}
}

// Labels returns the concatenated component names.
func (m *Multi) Labels() []string {
	var labels []string
	for _, f := range m.featurizers {
		labels = append(labels, f.Labels()...)
	}
	return labels
}

// Featurize runs every featurizer on site i and concatenates the results.
// The first failure aborts the call.
func (m *Multi) Featurize(s *structure.Structure, i int) ([]float64, error) {
	var vec []float64
	for _, f := range m.featurizers {
		part, err := f.Featurize(s, i)
		if err != nil {
			return nil, fmt.Errorf("featurize: site %d: %w", i, err)
		}
		if len(part) != len(f.Labels()) {
			return nil, fmt.Errorf("featurize: site %d: got %d values for %d labels", i, len(part), len(f.Labels()))
		}
		vec = append(vec, part...)
	}
	return vec, nil
}

// Default preset parameters. The recipe is fixed; callers tune nothing but
// the neighbor cutoff.
const (
	defaultCutoff    = 6.0  // Angstrom, coordination-shell search
	defaultGSFCutoff = 6.5  // Angstrom, symmetry-function cutoff
	shellMinWeight   = 0.25 // ECoN weight threshold for the discrete shell
)

// Default returns the fixed five-descriptor recipe: coordination-geometry
// fingerprint, effective coordination number, local electronegativity
// difference, bond-orientational parameters, and Gaussian symmetry
// functions.
func Default() *Multi {
	return DefaultWithCutoff(defaultCutoff)
}

// DefaultWithCutoff is Default with the coordination-shell cutoff
// overridden. A non-positive cutoff selects the preset.
func DefaultWithCutoff(cutoff float64) *Multi {
	if cutoff <= 0 {
		cutoff = defaultCutoff
	}
	return NewMulti(
		NewGeometryFingerprint(cutoff),
		NewCoordinationNumber(cutoff),
		NewLocalPropertyDifference(cutoff),
		NewBondOrientation(cutoff),
		NewGaussianSymm(defaultGSFCutoff),
	)
}
