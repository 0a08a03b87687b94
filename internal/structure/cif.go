package structure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ReadCIF parses a CIF file: cell parameters plus the atom-site loop.
// Only the first data block is read. Symmetry operations are not expanded;
// the file is expected to list the full set of sites (P1), which is what
// structure databases export for MOFs.
func ReadCIF(r io.Reader) (*Structure, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	cell := map[string]float64{}
	var sites []Site
	var lat Lattice
	haveLat := false

	var loopTags []string
	var loopRows [][]string
	inLoopHeader := false
	inLoopBody := false

	flushLoop := func() error {
		defer func() {
			loopTags = nil
			loopRows = nil
			inLoopBody = false
		}()
		if !isAtomSiteLoop(loopTags) {
			return nil
		}
		if !haveLat {
			var err error
			lat, err = cellLattice(cell)
			if err != nil {
				return err
			}
			haveLat = true
		}
		parsed, err := parseAtomSiteLoop(lat, loopTags, loopRows)
		if err != nil {
			return err
		}
		sites = append(sites, parsed...)
		return nil
	}

	for sc.Scan() {
		line := norm.NFKC.String(sc.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := splitCIFFields(line)
		if len(fields) == 0 {
			continue
		}

		switch {
		case strings.EqualFold(fields[0], "loop_"):
			if err := flushLoop(); err != nil {
				return nil, err
			}
			inLoopHeader = true

		case strings.HasPrefix(fields[0], "_"):
			if inLoopHeader {
				loopTags = append(loopTags, strings.ToLower(fields[0]))
				continue
			}
			if inLoopBody {
				if err := flushLoop(); err != nil {
					return nil, err
				}
			}
			tag := strings.ToLower(fields[0])
			if len(fields) >= 2 {
				if v, err := cifFloat(fields[1]); err == nil {
					cell[tag] = v
				}
			}

		default:
			if inLoopHeader {
				inLoopHeader = false
				inLoopBody = true
			}
			if inLoopBody {
				loopRows = append(loopRows, fields)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cif: %w", err)
	}
	if err := flushLoop(); err != nil {
		return nil, err
	}

	if !haveLat {
		return nil, fmt.Errorf("cif: no cell parameters found")
	}
	if len(sites) == 0 {
		return nil, fmt.Errorf("cif: no atom sites found")
	}
	return &Structure{Lattice: lat, Sites: sites}, nil
}

func cellLattice(cell map[string]float64) (Lattice, error) {
	get := func(tag string) (float64, bool) {
		v, ok := cell["_cell_"+tag]
		return v, ok
	}
	a, oka := get("length_a")
	b, okb := get("length_b")
	c, okc := get("length_c")
	if !oka || !okb || !okc {
		return Lattice{}, fmt.Errorf("cif: missing cell lengths")
	}
	alpha, ok := get("angle_alpha")
	if !ok {
		alpha = 90
	}
	beta, ok := get("angle_beta")
	if !ok {
		beta = 90
	}
	gamma, ok := get("angle_gamma")
	if !ok {
		gamma = 90
	}
	return LatticeFromParameters(a, b, c, alpha, beta, gamma)
}

func isAtomSiteLoop(tags []string) bool {
	for _, t := range tags {
		if strings.HasPrefix(t, "_atom_site_fract") {
			return true
		}
	}
	return false
}

func parseAtomSiteLoop(lat Lattice, tags []string, rows [][]string) ([]Site, error) {
	col := map[string]int{}
	for i, t := range tags {
		col[t] = i
	}
	ix, okx := col["_atom_site_fract_x"]
	iy, oky := col["_atom_site_fract_y"]
	iz, okz := col["_atom_site_fract_z"]
	if !okx || !oky || !okz {
		return nil, fmt.Errorf("cif: atom site loop missing fractional coordinates")
	}
	ilabel, hasLabel := col["_atom_site_label"]
	isym, hasSym := col["_atom_site_type_symbol"]
	iocc, hasOcc := col["_atom_site_occupancy"]

	var sites []Site
	for _, row := range rows {
		if len(row) != len(tags) {
			return nil, fmt.Errorf("cif: atom site row has %d values, want %d", len(row), len(tags))
		}
		x, err := cifFloat(row[ix])
		if err != nil {
			return nil, fmt.Errorf("cif: bad fract_x %q: %w", row[ix], err)
		}
		y, err := cifFloat(row[iy])
		if err != nil {
			return nil, fmt.Errorf("cif: bad fract_y %q: %w", row[iy], err)
		}
		z, err := cifFloat(row[iz])
		if err != nil {
			return nil, fmt.Errorf("cif: bad fract_z %q: %w", row[iz], err)
		}

		label := ""
		if hasLabel {
			label = row[ilabel]
		}
		raw := label
		if hasSym {
			raw = row[isym]
		}
		symbol, err := elementSymbol(raw)
		if err != nil {
			return nil, err
		}

		occ := 1.0
		if hasOcc {
			if v, err := cifFloat(row[iocc]); err == nil {
				occ = v
			}
		}
		sites = append(sites, newSite(lat, label, symbol, [3]float64{x, y, z}, occ))
	}
	return sites, nil
}

// cifFloat parses a CIF numeric value, stripping an uncertainty suffix
// like "1.234(5)". The placeholders "." and "?" are errors.
func cifFloat(s string) (float64, error) {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	if s == "." || s == "?" || s == "" {
		return 0, fmt.Errorf("value unknown")
	}
	return strconv.ParseFloat(s, 64)
}

// elementSymbol extracts the element symbol from a CIF label or type
// symbol such as "Fe1", "Fe2+", "OW" or "o".
func elementSymbol(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	var letters []byte
	for i := 0; i < len(raw) && len(letters) < 2; i++ {
		c := raw[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			letters = append(letters, c)
		} else {
			break
		}
	}
	if len(letters) == 0 {
		return "", fmt.Errorf("cif: cannot derive element from %q", raw)
	}
	// Prefer the two-letter symbol, fall back to one letter ("OW" -> O).
	if e, ok := lookupSymbol(string(letters)); ok {
		return e, nil
	}
	if e, ok := lookupSymbol(string(letters[:1])); ok {
		return e, nil
	}
	return "", fmt.Errorf("cif: unknown element in %q", raw)
}

// splitCIFFields splits a CIF line into fields, honoring single and
// double quoted strings.
func splitCIFFields(line string) []string {
	var fields []string
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == '\'' || line[i] == '"' {
			q := line[i]
			j := i + 1
			for j < len(line) && line[j] != q {
				j++
			}
			fields = append(fields, line[i+1:j])
			i = j + 1
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		fields = append(fields, line[i:j])
		i = j
	}
	return fields
}
