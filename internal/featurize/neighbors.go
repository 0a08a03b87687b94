package featurize

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mofminer/oxfeat/internal/structure"
)

// Neighbor is one periodic image of a site within the cutoff sphere of a
// center site.
type Neighbor struct {
	Index  int     // index of the neighbor site in the structure
	Dist   float64 // Angstrom
	Vec    r3.Vec  // vector from the center to the neighbor image
	Weight float64 // ECoN bond weight in [0, 1]
}

// neighborsWithin collects all periodic images of every site within cutoff
// of site i, sorted by distance. The center's own zero-distance image is
// excluded; its other periodic images are not.
func neighborsWithin(s *structure.Structure, i int, cutoff float64) []Neighbor {
	center := s.Sites[i].Cart
	na, nb, nc := imageCounts(s.Lattice, cutoff)

	var out []Neighbor
	for j, site := range s.Sites {
		for ia := -na; ia <= na; ia++ {
			for ib := -nb; ib <= nb; ib++ {
				for ic := -nc; ic <= nc; ic++ {
					shift := r3.Add(
						r3.Scale(float64(ia), s.Lattice.Rows[0]),
						r3.Add(
							r3.Scale(float64(ib), s.Lattice.Rows[1]),
							r3.Scale(float64(ic), s.Lattice.Rows[2]),
						),
					)
					v := r3.Sub(r3.Add(site.Cart, shift), center)
					d := r3.Norm(v)
					if d > cutoff {
						continue
					}
					if j == i && d < 1e-8 {
						continue
					}
					out = append(out, Neighbor{Index: j, Dist: d, Vec: v})
				}
			}
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Dist < out[b].Dist })
	return out
}

// imageCounts returns how many lattice translations along each direction
// are needed to cover a sphere of the given radius. The perpendicular
// spacing of lattice planes bounds the reach of one translation.
func imageCounts(lat structure.Lattice, cutoff float64) (int, int, int) {
	vol := lat.Volume()
	count := func(j, k int) int {
		cross := r3.Norm(r3.Cross(lat.Rows[j], lat.Rows[k]))
		if cross == 0 || vol == 0 {
			return 1
		}
		spacing := vol / cross
		return int(math.Ceil(cutoff/spacing)) + 1
	}
	return count(1, 2), count(2, 0), count(0, 1)
}

// econWeights assigns each neighbor an effective-coordination bond weight
// w = exp(1 - (d/d_avg)^6), where d_avg is the weighted mean bond length
// seeded from the shortest bond (Hoppe's ECoN scheme, one refinement pass).
// The input slice is modified in place and returned.
func econWeights(nbrs []Neighbor) []Neighbor {
	if len(nbrs) == 0 {
		return nbrs
	}
	dmin := nbrs[0].Dist // sorted ascending
	var num, den float64
	for _, n := range nbrs {
		w := math.Exp(1 - pow6(n.Dist/dmin))
		num += n.Dist * w
		den += w
	}
	davg := num / den
	for k := range nbrs {
		nbrs[k].Weight = math.Exp(1 - pow6(nbrs[k].Dist/davg))
	}
	return nbrs
}

// shell returns the neighbors that form the discrete coordination shell:
// those whose ECoN weight is at least minWeight.
func shell(nbrs []Neighbor, minWeight float64) []Neighbor {
	var out []Neighbor
	for _, n := range nbrs {
		if n.Weight >= minWeight {
			out = append(out, n)
		}
	}
	return out
}

func pow6(x float64) float64 {
	x3 := x * x * x
	return x3 * x3
}
