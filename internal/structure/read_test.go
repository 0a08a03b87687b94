package structure

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCIF = `# generated by oxfeat test suite
data_hkust_fragment
_cell_length_a    10.000(2)
_cell_length_b    10.0
_cell_length_c    10.0
_cell_angle_alpha 90
_cell_angle_beta  90
_cell_angle_gamma 90
loop_
_atom_site_label
_atom_site_type_symbol
_atom_site_fract_x
_atom_site_fract_y
_atom_site_fract_z
_atom_site_occupancy
Cu1 Cu2+ 0.25    0.25  0.25 1.0
O1  O    0.5     0.0   0.0  1.0
C1  C    0.0     0.5   0.0  1.0
Zn1 Zn   0.75(1) 0.75  0.75 0.5
`

const samplePOSCAR = `rutile TiO2
1.0
  4.6 0.0 0.0
  0.0 4.6 0.0
  0.0 0.0 2.95
Ti O
2 4
Direct
  0.0 0.0 0.0
  0.5 0.5 0.5
  0.305 0.305 0.0
  0.695 0.695 0.0
  0.195 0.805 0.5
  0.805 0.195 0.5
`

const sampleXYZ = `2
Lattice="8.0 0.0 0.0 0.0 8.0 0.0 0.0 0.0 8.0" Properties=species:S:1:pos:R:3
Fe 0.0 0.0 0.0
O  2.0 0.0 0.0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadCIF(t *testing.T) {
	s, err := ReadCIF(strings.NewReader(sampleCIF))
	if err != nil {
		t.Fatalf("ReadCIF: %v", err)
	}
	if len(s.Sites) != 4 {
		t.Fatalf("got %d sites, want 4", len(s.Sites))
	}
	cu := s.Sites[0]
	if cu.Symbol != "Cu" || cu.Label != "Cu1" {
		t.Errorf("site 0 = %q/%q, want Cu1/Cu", cu.Label, cu.Symbol)
	}
	if math.Abs(cu.Cart.X-2.5) > 1e-9 {
		t.Errorf("Cu1 cart x = %g, want 2.5", cu.Cart.X)
	}
	zn := s.Sites[3]
	if math.Abs(zn.Frac[0]-0.75) > 1e-9 {
		t.Errorf("Zn1 fract x = %g, want 0.75 (uncertainty suffix should be stripped)", zn.Frac[0])
	}
	if math.Abs(zn.Occupancy-0.5) > 1e-9 {
		t.Errorf("Zn1 occupancy = %g, want 0.5", zn.Occupancy)
	}
}

func TestReadCIFChargeDecoration(t *testing.T) {
	s, err := ReadCIF(strings.NewReader(sampleCIF))
	if err != nil {
		t.Fatalf("ReadCIF: %v", err)
	}
	// "Cu2+" in _atom_site_type_symbol must resolve to the bare element.
	if s.Sites[0].Symbol != "Cu" {
		t.Errorf("charge-decorated symbol resolved to %q, want Cu", s.Sites[0].Symbol)
	}
}

func TestReadCIFErrors(t *testing.T) {
	cases := map[string]string{
		"empty":    "",
		"no cell":  "data_x\nloop_\n_atom_site_label\n_atom_site_fract_x\n_atom_site_fract_y\n_atom_site_fract_z\nC1 0 0 0\n",
		"no sites": "data_x\n_cell_length_a 5\n_cell_length_b 5\n_cell_length_c 5\n",
	}
	for name, content := range cases {
		if _, err := ReadCIF(strings.NewReader(content)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestReadPOSCAR(t *testing.T) {
	s, err := ReadPOSCAR(strings.NewReader(samplePOSCAR))
	if err != nil {
		t.Fatalf("ReadPOSCAR: %v", err)
	}
	if len(s.Sites) != 6 {
		t.Fatalf("got %d sites, want 6", len(s.Sites))
	}
	if s.Sites[0].Symbol != "Ti" || s.Sites[2].Symbol != "O" {
		t.Errorf("unexpected species order: %q, %q", s.Sites[0].Symbol, s.Sites[2].Symbol)
	}
	if v := s.Lattice.Volume(); math.Abs(v-4.6*4.6*2.95) > 1e-9 {
		t.Errorf("Volume = %g, want %g", v, 4.6*4.6*2.95)
	}
	_, indices := s.MetalSites()
	if len(indices) != 2 {
		t.Errorf("got %d metal sites, want 2 (the Ti sites)", len(indices))
	}
}

func TestReadXYZ(t *testing.T) {
	s, err := ReadXYZ(strings.NewReader(sampleXYZ))
	if err != nil {
		t.Fatalf("ReadXYZ: %v", err)
	}
	if len(s.Sites) != 2 {
		t.Fatalf("got %d sites, want 2", len(s.Sites))
	}
	if math.Abs(s.Sites[1].Frac[0]-0.25) > 1e-9 {
		t.Errorf("O fract x = %g, want 0.25", s.Sites[1].Frac[0])
	}
}

func TestReadXYZRequiresLattice(t *testing.T) {
	bare := "1\nwater fragment\nO 0.0 0.0 0.0\n"
	if _, err := ReadXYZ(strings.NewReader(bare)); err == nil {
		t.Error("expected error for XYZ without Lattice entry")
	}
}

func TestReadDispatch(t *testing.T) {
	cif := writeFile(t, "mof.cif", sampleCIF)
	if _, err := Read(cif); err != nil {
		t.Errorf("Read(.cif): %v", err)
	}
	poscar := writeFile(t, "POSCAR", samplePOSCAR)
	if _, err := Read(poscar); err != nil {
		t.Errorf("Read(POSCAR): %v", err)
	}
	xyz := writeFile(t, "cluster.xyz", sampleXYZ)
	if _, err := Read(xyz); err != nil {
		t.Errorf("Read(.xyz): %v", err)
	}
	unknown := writeFile(t, "notes.txt", "hello")
	if _, err := Read(unknown); err == nil {
		t.Error("Read(.txt): expected unsupported format error")
	}
	if _, err := Read(filepath.Join(t.TempDir(), "missing.cif")); err == nil {
		t.Error("Read(missing): expected error")
	}
}
