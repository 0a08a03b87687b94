package featurize

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mofminer/oxfeat/internal/structure"
)

// bopOrders are the spherical-harmonic orders of the Steinhardt parameters.
var bopOrders = []int{2, 4, 6, 8, 10}

// BondOrientation computes Steinhardt bond-orientational order parameters
// q_l for l = 2,4,6,8,10, plus the neighbor-averaged variants qbar_l of
// Lechner and Dellago, which separate crystal polymorphs far better than
// the bare q_l.
type BondOrientation struct {
	Cutoff float64
}

// NewBondOrientation creates the featurizer with the given cutoff.
func NewBondOrientation(cutoff float64) *BondOrientation {
	return &BondOrientation{Cutoff: cutoff}
}

func (b *BondOrientation) Labels() []string {
	labels := make([]string, 0, 2*len(bopOrders))
	for _, l := range bopOrders {
		labels = append(labels, fmt.Sprintf("q%d", l))
	}
	for _, l := range bopOrders {
		labels = append(labels, fmt.Sprintf("qbar%d", l))
	}
	return labels
}

func (b *BondOrientation) Featurize(s *structure.Structure, i int) ([]float64, error) {
	nbrs := shell(econWeights(neighborsWithin(s, i, b.Cutoff)), shellMinWeight)

	out := make([]float64, 0, 2*len(bopOrders))
	qlmCenter := make(map[int][]complex128, len(bopOrders))
	for _, l := range bopOrders {
		qlm := qlmVector(nbrs, l)
		qlmCenter[l] = qlm
		out = append(out, qlNorm(l, qlm))
	}

	// Averaged variant: mean of the q_lm vectors of the site and its shell
	// neighbors, then the same rotation-invariant contraction.
	for _, l := range bopOrders {
		acc := append([]complex128(nil), qlmCenter[l]...)
		count := 1.0
		for _, n := range nbrs {
			nn := shell(econWeights(neighborsWithin(s, n.Index, b.Cutoff)), shellMinWeight)
			for m, v := range qlmVector(nn, l) {
				acc[m] += v
			}
			count++
		}
		for m := range acc {
			acc[m] /= complex(count, 0)
		}
		out = append(out, qlNorm(l, acc))
	}
	return out, nil
}

// qlmVector computes the bond-weighted average of Y_lm over the neighbor
// bond directions, for m = 0..l. Negative m follows from conjugation
// symmetry and is not stored.
func qlmVector(nbrs []Neighbor, l int) []complex128 {
	qlm := make([]complex128, l+1)
	if len(nbrs) == 0 {
		return qlm
	}
	var wsum float64
	for _, n := range nbrs {
		w := n.Weight
		if w <= 0 {
			continue
		}
		theta, phi := sphericalAngles(n.Vec)
		for m := 0; m <= l; m++ {
			qlm[m] += complex(w, 0) * sphericalHarmonic(l, m, theta, phi)
		}
		wsum += w
	}
	if wsum > 0 {
		for m := range qlm {
			qlm[m] /= complex(wsum, 0)
		}
	}
	return qlm
}

// qlNorm contracts a q_lm vector into the rotation invariant
// q_l = sqrt(4*pi/(2l+1) * sum_m |q_lm|^2).
func qlNorm(l int, qlm []complex128) float64 {
	sum := real(qlm[0] * cmplx.Conj(qlm[0]))
	for m := 1; m <= l; m++ {
		sum += 2 * real(qlm[m]*cmplx.Conj(qlm[m]))
	}
	return math.Sqrt(4 * math.Pi / float64(2*l+1) * sum)
}

// sphericalAngles returns the polar angle theta (from +z) and azimuth phi
// of a direction vector.
func sphericalAngles(v r3.Vec) (theta, phi float64) {
	r := r3.Norm(v)
	if r == 0 {
		return 0, 0
	}
	cos := v.Z / r
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos), math.Atan2(v.Y, v.X)
}

// sphericalHarmonic evaluates Y_lm(theta, phi) for m >= 0.
func sphericalHarmonic(l, m int, theta, phi float64) complex128 {
	p := assocLegendre(l, m, math.Cos(theta))
	norm := math.Sqrt(float64(2*l+1) / (4 * math.Pi) * factorialRatio(l-m, l+m))
	return complex(norm*p, 0) * cmplx.Exp(complex(0, float64(m)*phi))
}

// factorialRatio computes a! / b! for a <= b without overflowing
// intermediate factorials.
func factorialRatio(a, b int) float64 {
	r := 1.0
	for k := a + 1; k <= b; k++ {
		r /= float64(k)
	}
	return r
}

// assocLegendre evaluates the associated Legendre polynomial P_l^m(x)
// (Condon-Shortley phase included) by upward recurrence in l.
func assocLegendre(l, m int, x float64) float64 {
	// P_m^m.
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for k := 1; k <= m; k++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}
	// P_{m+1}^m.
	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}
	// Upward in l.
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm = pmmp1
		pmmp1 = pll
	}
	return pll
}
