package featurize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mofminer/oxfeat/internal/structure"
)

// Behler-Parrinello symmetry-function presets.
var (
	g2Etas = []float64{0.05, 4, 20, 80}
	g4Params = []struct {
		eta, zeta, lambda float64
	}{
		{0.005, 1, 1},
		{0.005, 1, -1},
		{0.005, 4, 1},
		{0.005, 4, -1},
	}
)

// GaussianSymm computes Behler-Parrinello atom-centered symmetry functions:
// four radial G2 terms and four angular G4 terms, all element-agnostic and
// with a cosine cutoff.
type GaussianSymm struct {
	Cutoff float64
}

// NewGaussianSymm creates the featurizer with the given cutoff.
func NewGaussianSymm(cutoff float64) *GaussianSymm {
	return &GaussianSymm{Cutoff: cutoff}
}

func (g *GaussianSymm) Labels() []string {
	labels := make([]string, 0, len(g2Etas)+len(g4Params))
	for _, eta := range g2Etas {
		labels = append(labels, fmt.Sprintf("g2_eta%g", eta))
	}
	for _, p := range g4Params {
		labels = append(labels, fmt.Sprintf("g4_eta%g_zeta%g_lambda%g", p.eta, p.zeta, p.lambda))
	}
	return labels
}

func (g *GaussianSymm) Featurize(s *structure.Structure, i int) ([]float64, error) {
	nbrs := neighborsWithin(s, i, g.Cutoff)
	rc := g.Cutoff
	rc2 := rc * rc

	out := make([]float64, 0, len(g2Etas)+len(g4Params))
	for _, eta := range g2Etas {
		var sum float64
		for _, n := range nbrs {
			sum += math.Exp(-eta*n.Dist*n.Dist/rc2) * cosineCutoff(n.Dist, rc)
		}
		out = append(out, sum)
	}

	for _, p := range g4Params {
		var sum float64
		for a := 0; a < len(nbrs); a++ {
			for b := a + 1; b < len(nbrs); b++ {
				rij, rik := nbrs[a].Dist, nbrs[b].Dist
				jk := r3.Sub(nbrs[b].Vec, nbrs[a].Vec)
				rjk := r3.Norm(jk)
				if rjk > rc {
					continue
				}
				cosTheta := r3.Cos(nbrs[a].Vec, nbrs[b].Vec)
				ang := 1 + p.lambda*cosTheta
				if ang <= 0 {
					continue
				}
				sum += math.Pow(ang, p.zeta) *
					math.Exp(-p.eta*(rij*rij+rik*rik+rjk*rjk)/rc2) *
					cosineCutoff(rij, rc) * cosineCutoff(rik, rc) * cosineCutoff(rjk, rc)
			}
		}
		// The conventional double sum over ordered pairs is twice the
		// unordered sum.
		out = append(out, math.Pow(2, 1-p.zeta)*2*sum)
	}
	return out, nil
}

// cosineCutoff is the Behler cutoff function: smooth decay to zero at rc.
func cosineCutoff(r, rc float64) float64 {
	if r >= rc {
		return 0
	}
	return 0.5 * (math.Cos(math.Pi*r/rc) + 1)
}
