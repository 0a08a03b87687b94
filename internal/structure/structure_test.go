package structure

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestLatticeFromParametersCubic(t *testing.T) {
	lat, err := LatticeFromParameters(4, 4, 4, 90, 90, 90)
	if err != nil {
		t.Fatalf("LatticeFromParameters: %v", err)
	}
	want := Lattice{Rows: [3]r3.Vec{{X: 4}, {Y: 4}, {Z: 4}}}
	if diff := cmp.Diff(want, lat, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("cubic lattice mismatch (-want +got):\n%s", diff)
	}
	if v := lat.Volume(); math.Abs(v-64) > 1e-9 {
		t.Errorf("Volume = %g, want 64", v)
	}
}

func TestLatticeFromParametersInvalid(t *testing.T) {
	if _, err := LatticeFromParameters(0, 4, 4, 90, 90, 90); err == nil {
		t.Error("expected error for zero cell length")
	}
	if _, err := LatticeFromParameters(4, 4, 4, 180, 90, 90); err == nil {
		t.Error("expected error for degenerate angles")
	}
}

func TestFractionalRoundTrip(t *testing.T) {
	lat, err := LatticeFromParameters(5.1, 6.2, 7.3, 80, 95, 103)
	if err != nil {
		t.Fatalf("LatticeFromParameters: %v", err)
	}
	frac := [3]float64{0.12, 0.77, 0.31}
	cart := lat.Cartesian(frac)
	back, err := lat.Fractional(cart)
	if err != nil {
		t.Fatalf("Fractional: %v", err)
	}
	for i := range frac {
		if math.Abs(back[i]-frac[i]) > 1e-9 {
			t.Errorf("component %d: got %g, want %g", i, back[i], frac[i])
		}
	}
}

func TestWrapFrac(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.25, 0.75},
		{0, 0},
		{1, 0},
	}
	for _, c := range cases {
		if got := wrapFrac(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("wrapFrac(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestMetalSites(t *testing.T) {
	lat, _ := LatticeFromParameters(10, 10, 10, 90, 90, 90)
	s := &Structure{
		Lattice: lat,
		Sites: []Site{
			newSite(lat, "O1", "O", [3]float64{0, 0, 0}, 1),
			newSite(lat, "Cu1", "Cu", [3]float64{0.5, 0, 0}, 1),
			newSite(lat, "C1", "C", [3]float64{0, 0.5, 0}, 1),
			newSite(lat, "Cu2", "Cu", [3]float64{0.5, 0.5, 0}, 1),
			newSite(lat, "Zn1", "Zn", [3]float64{0, 0, 0.5}, 1),
		},
	}
	sites, indices := s.MetalSites()
	if diff := cmp.Diff([]int{1, 3, 4}, indices); diff != "" {
		t.Errorf("indices mismatch (-want +got):\n%s", diff)
	}
	wantSymbols := []string{"Cu", "Cu", "Zn"}
	for i, site := range sites {
		if site.Symbol != wantSymbols[i] {
			t.Errorf("site %d symbol = %q, want %q", i, site.Symbol, wantSymbols[i])
		}
	}
}

func TestMetalSitesEmpty(t *testing.T) {
	lat, _ := LatticeFromParameters(10, 10, 10, 90, 90, 90)
	s := &Structure{
		Lattice: lat,
		Sites: []Site{
			newSite(lat, "", "C", [3]float64{0, 0, 0}, 1),
			newSite(lat, "", "O", [3]float64{0.5, 0.5, 0.5}, 1),
		},
	}
	sites, indices := s.MetalSites()
	if len(sites) != 0 || len(indices) != 0 {
		t.Errorf("expected no metal sites, got %d/%d", len(sites), len(indices))
	}
}
