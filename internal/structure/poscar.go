package structure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReadPOSCAR parses a VASP 5 POSCAR/CONTCAR file (symbols line required).
func ReadPOSCAR(r io.Reader) (*Structure, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	next := func() (string, error) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				return line, nil
			}
		}
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	if _, err := next(); err != nil { // comment line
		return nil, fmt.Errorf("poscar: empty file")
	}

	scaleLine, err := next()
	if err != nil {
		return nil, fmt.Errorf("poscar: missing scale line")
	}
	scale, err := strconv.ParseFloat(strings.Fields(scaleLine)[0], 64)
	if err != nil {
		return nil, fmt.Errorf("poscar: bad scale %q", scaleLine)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("poscar: negative scale (target volume) is not supported")
	}

	var rows [3]r3.Vec
	for i := range rows {
		line, err := next()
		if err != nil {
			return nil, fmt.Errorf("poscar: missing lattice vector %d", i+1)
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("poscar: lattice vector %d has %d components", i+1, len(fields))
		}
		for j, dst := range []*float64{&rows[i].X, &rows[i].Y, &rows[i].Z} {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fmt.Errorf("poscar: bad lattice component %q", fields[j])
			}
			*dst = v * scale
		}
	}
	lat := Lattice{Rows: rows}

	symLine, err := next()
	if err != nil {
		return nil, fmt.Errorf("poscar: missing element symbols line")
	}
	symbols := strings.Fields(symLine)
	if _, err := strconv.Atoi(symbols[0]); err == nil {
		return nil, fmt.Errorf("poscar: VASP 4 files without a symbols line are not supported")
	}
	for i, s := range symbols {
		canon, ok := lookupSymbol(s)
		if !ok {
			return nil, fmt.Errorf("poscar: unknown element %q", s)
		}
		symbols[i] = canon
	}

	countLine, err := next()
	if err != nil {
		return nil, fmt.Errorf("poscar: missing counts line")
	}
	countFields := strings.Fields(countLine)
	if len(countFields) != len(symbols) {
		return nil, fmt.Errorf("poscar: %d counts for %d symbols", len(countFields), len(symbols))
	}
	counts := make([]int, len(countFields))
	total := 0
	for i, f := range countFields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("poscar: bad count %q", f)
		}
		counts[i] = n
		total += n
	}

	mode, err := next()
	if err != nil {
		return nil, fmt.Errorf("poscar: missing coordinate mode line")
	}
	if len(mode) > 0 && (mode[0] == 'S' || mode[0] == 's') { // Selective dynamics
		mode, err = next()
		if err != nil {
			return nil, fmt.Errorf("poscar: missing coordinate mode line")
		}
	}
	cartesian := mode[0] == 'C' || mode[0] == 'c' || mode[0] == 'K' || mode[0] == 'k'

	sites := make([]Site, 0, total)
	for i, sym := range symbols {
		for k := 0; k < counts[i]; k++ {
			line, err := next()
			if err != nil {
				return nil, fmt.Errorf("poscar: expected %d coordinate lines, got %d", total, len(sites))
			}
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return nil, fmt.Errorf("poscar: coordinate line %d has %d fields", len(sites)+1, len(fields))
			}
			var c [3]float64
			for j := 0; j < 3; j++ {
				v, err := strconv.ParseFloat(fields[j], 64)
				if err != nil {
					return nil, fmt.Errorf("poscar: bad coordinate %q", fields[j])
				}
				c[j] = v
			}
			var frac [3]float64
			if cartesian {
				frac, err = lat.Fractional(r3.Scale(scale, r3.Vec{X: c[0], Y: c[1], Z: c[2]}))
				if err != nil {
					return nil, fmt.Errorf("poscar: %w", err)
				}
			} else {
				frac = c
			}
			sites = append(sites, newSite(lat, fmt.Sprintf("%s%d", sym, k+1), sym, frac, 1))
		}
	}
	return &Structure{Lattice: lat, Sites: sites}, nil
}
