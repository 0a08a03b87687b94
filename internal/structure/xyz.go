package structure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReadXYZ parses an extended XYZ file. The comment line must carry a
// Lattice="ax ay az bx by bz cx cy cz" entry; a bare XYZ has no cell and
// cannot describe a periodic structure, so it is rejected.
func ReadXYZ(r io.Reader) (*Structure, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("xyz: empty file")
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("xyz: bad atom count %q", sc.Text())
	}

	if !sc.Scan() {
		return nil, fmt.Errorf("xyz: missing comment line")
	}
	lat, err := parseXYZLattice(sc.Text())
	if err != nil {
		return nil, err
	}

	sites := make([]Site, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("xyz: expected %d atom lines, got %d", n, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			return nil, fmt.Errorf("xyz: atom line %d has %d fields, want at least 4", i+1, len(fields))
		}
		symbol, ok := lookupSymbol(fields[0])
		if !ok {
			return nil, fmt.Errorf("xyz: unknown element %q on line %d", fields[0], i+3)
		}
		var cart r3.Vec
		for j, dst := range []*float64{&cart.X, &cart.Y, &cart.Z} {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("xyz: bad coordinate %q on line %d", fields[j+1], i+3)
			}
			*dst = v
		}
		frac, err := lat.Fractional(cart)
		if err != nil {
			return nil, fmt.Errorf("xyz: %w", err)
		}
		sites = append(sites, newSite(lat, "", symbol, frac, 1))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("xyz: %w", err)
	}
	return &Structure{Lattice: lat, Sites: sites}, nil
}

// parseXYZLattice extracts the nine lattice components from an extended
// XYZ comment line. Lattice="..." may appear anywhere on the line, with
// either single or double quotes.
func parseXYZLattice(comment string) (Lattice, error) {
	idx := strings.Index(comment, "Lattice=")
	if idx < 0 {
		idx = strings.Index(comment, "lattice=")
	}
	if idx < 0 {
		return Lattice{}, fmt.Errorf("xyz: no Lattice entry in comment line (bare XYZ files are not periodic)")
	}
	rest := comment[idx+len("Lattice="):]
	if rest == "" {
		return Lattice{}, fmt.Errorf("xyz: empty Lattice entry")
	}
	if rest[0] == '"' || rest[0] == '\'' {
		q := rest[0]
		end := strings.IndexByte(rest[1:], q)
		if end < 0 {
			return Lattice{}, fmt.Errorf("xyz: unterminated Lattice entry")
		}
		rest = rest[1 : 1+end]
	}
	fields := strings.Fields(rest)
	if len(fields) < 9 {
		return Lattice{}, fmt.Errorf("xyz: Lattice entry has %d components, want 9", len(fields))
	}
	var vals [9]float64
	for i := 0; i < 9; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Lattice{}, fmt.Errorf("xyz: bad Lattice component %q", fields[i])
		}
		vals[i] = v
	}
	return Lattice{Rows: [3]r3.Vec{
		{X: vals[0], Y: vals[1], Z: vals[2]},
		{X: vals[3], Y: vals[4], Z: vals[5]},
		{X: vals[6], Y: vals[7], Z: vals[8]},
	}}, nil
}
