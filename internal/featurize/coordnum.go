package featurize

import (
	"gonum.org/v1/gonum/floats"

	"github.com/mofminer/oxfeat/internal/structure"
)

// CoordinationNumber computes Hoppe's effective coordination number: the
// sum of ECoN bond weights over the cutoff sphere. Fractional by
// construction; 6.0 for an ideal octahedron.
type CoordinationNumber struct {
	Cutoff float64
}

// NewCoordinationNumber creates the featurizer with the given cutoff.
func NewCoordinationNumber(cutoff float64) *CoordinationNumber {
	return &CoordinationNumber{Cutoff: cutoff}
}

func (c *CoordinationNumber) Labels() []string {
	return []string{"econ_cn"}
}

func (c *CoordinationNumber) Featurize(s *structure.Structure, i int) ([]float64, error) {
	nbrs := econWeights(neighborsWithin(s, i, c.Cutoff))
	weights := make([]float64, len(nbrs))
	for k, n := range nbrs {
		weights[k] = n.Weight
	}
	return []float64{floats.Sum(weights)}, nil
}
