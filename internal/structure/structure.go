// Package structure holds the in-memory crystal model and the file readers
// that produce it (CIF, extended XYZ, VASP POSCAR).
package structure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mofminer/oxfeat/internal/periodic"
)

// Lattice is a periodic cell described by three row vectors in Angstrom.
type Lattice struct {
	Rows [3]r3.Vec
}

// LatticeFromParameters builds a lattice from cell lengths (Angstrom) and
// angles (degrees), using the standard crystallographic convention with a
// along x and b in the xy plane.
func LatticeFromParameters(a, b, c, alpha, beta, gamma float64) (Lattice, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return Lattice{}, fmt.Errorf("lattice: non-positive cell length (%g, %g, %g)", a, b, c)
	}
	ar := alpha * math.Pi / 180
	br := beta * math.Pi / 180
	gr := gamma * math.Pi / 180

	cx := c * math.Cos(br)
	cy := c * (math.Cos(ar) - math.Cos(br)*math.Cos(gr)) / math.Sin(gr)
	cz2 := c*c - cx*cx - cy*cy
	if cz2 <= 0 {
		return Lattice{}, fmt.Errorf("lattice: degenerate cell angles (%g, %g, %g)", alpha, beta, gamma)
	}

	return Lattice{Rows: [3]r3.Vec{
		{X: a},
		{X: b * math.Cos(gr), Y: b * math.Sin(gr)},
		{X: cx, Y: cy, Z: math.Sqrt(cz2)},
	}}, nil
}

// Cartesian converts fractional coordinates to Cartesian.
func (l Lattice) Cartesian(f [3]float64) r3.Vec {
	var v r3.Vec
	for i, fi := range f {
		v = r3.Add(v, r3.Scale(fi, l.Rows[i]))
	}
	return v
}

// Fractional converts Cartesian coordinates to fractional.
func (l Lattice) Fractional(v r3.Vec) ([3]float64, error) {
	inv, err := l.inverse()
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{
		v.X*inv[0][0] + v.Y*inv[1][0] + v.Z*inv[2][0],
		v.X*inv[0][1] + v.Y*inv[1][1] + v.Z*inv[2][1],
		v.X*inv[0][2] + v.Y*inv[1][2] + v.Z*inv[2][2],
	}, nil
}

// Volume returns the cell volume in cubic Angstrom.
func (l Lattice) Volume() float64 {
	return math.Abs(r3.Dot(l.Rows[0], r3.Cross(l.Rows[1], l.Rows[2])))
}

// Lengths returns the three cell edge lengths.
func (l Lattice) Lengths() [3]float64 {
	return [3]float64{
		r3.Norm(l.Rows[0]),
		r3.Norm(l.Rows[1]),
		r3.Norm(l.Rows[2]),
	}
}

// inverse returns the matrix inverse of the row-vector matrix.
func (l Lattice) inverse() ([3][3]float64, error) {
	m := [3][3]float64{
		{l.Rows[0].X, l.Rows[0].Y, l.Rows[0].Z},
		{l.Rows[1].X, l.Rows[1].Y, l.Rows[1].Z},
		{l.Rows[2].X, l.Rows[2].Y, l.Rows[2].Z},
	}
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if math.Abs(det) < 1e-12 {
		return [3][3]float64{}, fmt.Errorf("lattice: singular cell matrix")
	}
	inv := [3][3]float64{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
	for i := range inv {
		for j := range inv[i] {
			inv[i][j] /= det
		}
	}
	return inv, nil
}

// Site is one atomic position in a Structure.
type Site struct {
	Label     string     // site label from the source file (e.g. "Fe1"); falls back to the symbol
	Symbol    string     // element symbol; the record key downstream
	Frac      [3]float64 // fractional coordinates
	Cart      r3.Vec     // Cartesian coordinates in Angstrom
	Occupancy float64
}

// Element resolves the site's element data from the periodic table.
func (s Site) Element() (periodic.Element, bool) {
	return periodic.Lookup(s.Symbol)
}

// Structure is a periodic crystal: a lattice plus an ordered site list.
type Structure struct {
	Lattice Lattice
	Sites   []Site
}

// MetalSites returns the sites whose element is classified as a metal,
// in structure order, together with their original indices.
func (s *Structure) MetalSites() ([]Site, []int) {
	var sites []Site
	var indices []int
	for i, site := range s.Sites {
		el, ok := site.Element()
		if ok && el.IsMetal() {
			sites = append(sites, site)
			indices = append(indices, i)
		}
	}
	return sites, indices
}

// lookupSymbol resolves a candidate symbol to its canonical form.
func lookupSymbol(s string) (string, bool) {
	e, ok := periodic.Lookup(s)
	return e.Symbol, ok
}

// wrapFrac maps a fractional coordinate into [0, 1).
func wrapFrac(f float64) float64 {
	f = math.Mod(f, 1)
	if f < 0 {
		f++
	}
	return f
}

// newSite builds a Site from fractional coordinates, filling in the
// Cartesian position.
func newSite(lat Lattice, label, symbol string, frac [3]float64, occ float64) Site {
	for i := range frac {
		frac[i] = wrapFrac(frac[i])
	}
	if label == "" {
		label = symbol
	}
	if occ == 0 {
		occ = 1
	}
	return Site{
		Label:     label,
		Symbol:    symbol,
		Frac:      frac,
		Cart:      lat.Cartesian(frac),
		Occupancy: occ,
	}
}
