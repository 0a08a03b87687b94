package featurize

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mofminer/oxfeat/internal/structure"
)

// coordGeometry is one ideal coordination geometry: its coordination number
// and the multiset of center angles (degrees) between all ligand pairs.
type coordGeometry struct {
	name   string
	cn     int
	angles []float64
}

// geometries is the fixed fingerprint layout. A geometry with cn ligands
// has cn*(cn-1)/2 pair angles.
var geometries = []coordGeometry{
	{"linear", 2, []float64{180}},
	{"bent", 2, []float64{104.5}},
	{"trigonal_planar", 3, []float64{120, 120, 120}},
	{"trigonal_pyramidal", 3, []float64{107, 107, 107}},
	{"t_shaped", 3, []float64{90, 90, 180}},
	{"tetrahedral", 4, repeatAngles([]float64{109.47}, []int{6})},
	{"square_planar", 4, repeatAngles([]float64{90, 180}, []int{4, 2})},
	{"seesaw", 4, repeatAngles([]float64{90, 120, 180}, []int{4, 1, 1})},
	{"trigonal_bipyramidal", 5, repeatAngles([]float64{90, 120, 180}, []int{6, 3, 1})},
	{"square_pyramidal", 5, repeatAngles([]float64{90, 180}, []int{8, 2})},
	{"octahedral", 6, repeatAngles([]float64{90, 180}, []int{12, 3})},
	{"trigonal_prismatic", 6, repeatAngles([]float64{81.79, 135.58}, []int{9, 6})},
	{"pentagonal_bipyramidal", 7, repeatAngles([]float64{72, 90, 144, 180}, []int{5, 10, 5, 1})},
	{"cubic", 8, repeatAngles([]float64{70.53, 109.47, 180}, []int{12, 12, 4})},
	{"square_antiprismatic", 8, repeatAngles([]float64{74.86, 118.53, 141.59}, []int{16, 4, 8})},
}

func repeatAngles(angles []float64, counts []int) []float64 {
	var out []float64
	for i, a := range angles {
		for k := 0; k < counts[i]; k++ {
			out = append(out, a)
		}
	}
	return out
}

// GeometryFingerprint scores the discrete coordination shell of a site
// against each ideal geometry. Geometries whose coordination number does
// not match the shell score zero; the matching ones score in (0, 1] by
// Gaussian similarity of the sorted center-angle multisets.
type GeometryFingerprint struct {
	Cutoff float64
	// Sigma is the angular tolerance in degrees.
	Sigma float64
}

// NewGeometryFingerprint creates the featurizer with the preset tolerance.
func NewGeometryFingerprint(cutoff float64) *GeometryFingerprint {
	return &GeometryFingerprint{Cutoff: cutoff, Sigma: 15}
}

func (g *GeometryFingerprint) Labels() []string {
	labels := make([]string, len(geometries))
	for i, geo := range geometries {
		labels[i] = "geom_" + geo.name
	}
	return labels
}

func (g *GeometryFingerprint) Featurize(s *structure.Structure, i int) ([]float64, error) {
	nbrs := shell(econWeights(neighborsWithin(s, i, g.Cutoff)), shellMinWeight)
	observed := centerAngles(nbrs)

	out := make([]float64, len(geometries))
	for k, geo := range geometries {
		if geo.cn != len(nbrs) {
			continue
		}
		out[k] = angleSimilarity(observed, geo.angles, g.Sigma)
	}
	return out, nil
}

// centerAngles returns all pairwise center angles between neighbor bond
// vectors, in degrees, sorted ascending.
func centerAngles(nbrs []Neighbor) []float64 {
	var angles []float64
	for a := 0; a < len(nbrs); a++ {
		for b := a + 1; b < len(nbrs); b++ {
			cos := r3.Cos(nbrs[a].Vec, nbrs[b].Vec)
			cos = math.Max(-1, math.Min(1, cos))
			angles = append(angles, math.Acos(cos)*180/math.Pi)
		}
	}
	sort.Float64s(angles)
	return angles
}

// angleSimilarity compares two equal-length sorted angle multisets with a
// Gaussian kernel. Returns 1 for a perfect match, approaching 0 as the
// mean squared deviation grows past sigma.
func angleSimilarity(observed, ideal []float64, sigma float64) float64 {
	if len(observed) != len(ideal) {
		return 0
	}
	if len(observed) == 0 {
		return 1
	}
	idealSorted := append([]float64(nil), ideal...)
	sort.Float64s(idealSorted)

	var sq float64
	for i := range observed {
		d := observed[i] - idealSorted[i]
		sq += d * d
	}
	msd := sq / float64(len(observed))
	return math.Exp(-msd / (2 * sigma * sigma))
}
