package featurize

import (
	"fmt"
	"math"

	"github.com/mofminer/oxfeat/internal/structure"
)

// LocalPropertyDifference measures how chemically unlike a site's
// surroundings are: the bond-weight-averaged absolute difference in Pauling
// electronegativity between the center and its neighbors.
type LocalPropertyDifference struct {
	Cutoff float64
}

// NewLocalPropertyDifference creates the featurizer with the given cutoff.
func NewLocalPropertyDifference(cutoff float64) *LocalPropertyDifference {
	return &LocalPropertyDifference{Cutoff: cutoff}
}

func (l *LocalPropertyDifference) Labels() []string {
	return []string{"local_en_difference"}
}

func (l *LocalPropertyDifference) Featurize(s *structure.Structure, i int) ([]float64, error) {
	center, ok := s.Sites[i].Element()
	if !ok {
		return nil, fmt.Errorf("local property difference: unknown element %q", s.Sites[i].Symbol)
	}

	nbrs := econWeights(neighborsWithin(s, i, l.Cutoff))
	var num, den float64
	for _, n := range nbrs {
		el, ok := s.Sites[n.Index].Element()
		if !ok {
			return nil, fmt.Errorf("local property difference: unknown element %q", s.Sites[n.Index].Symbol)
		}
		num += n.Weight * math.Abs(el.Electronegativity-center.Electronegativity)
		den += n.Weight
	}
	if den == 0 {
		return []float64{0}, nil
	}
	return []float64{num / den}, nil
}
