// Package periodic provides the element properties the featurizers need:
// metal classification, Pauling electronegativity, and covalent radii.
package periodic

import "strings"

// Category is the periodic-table block an element belongs to.
type Category int

const (
	Unknown Category = iota
	AlkaliMetal
	AlkalineEarthMetal
	TransitionMetal
	PostTransitionMetal
	Lanthanoid
	Actinoid
	Metalloid
	Nonmetal
	Halogen
	NobleGas
)

// Element holds the per-element data used across the module.
type Element struct {
	Symbol            string
	Number            int
	Electronegativity float64 // Pauling scale; 0 when undefined
	CovalentRadius    float64 // Angstrom
	Category          Category
}

// IsMetal reports whether the element is classified as a metal.
// Metalloids are not metals under this classification.
func (e Element) IsMetal() bool {
	switch e.Category {
	case AlkaliMetal, AlkalineEarthMetal, TransitionMetal,
		PostTransitionMetal, Lanthanoid, Actinoid:
		return true
	}
	return false
}

// Lookup finds an element by symbol. Matching is case-normalizing
// ("FE" and "fe" resolve to Fe) so loaders can pass raw file tokens.
func Lookup(symbol string) (Element, bool) {
	e, ok := bySymbol[normalize(symbol)]
	return e, ok
}

// ByNumber finds an element by atomic number.
func ByNumber(z int) (Element, bool) {
	if z < 1 || z > len(table) {
		return Element{}, false
	}
	return table[z-1], true
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

var bySymbol = func() map[string]Element {
	m := make(map[string]Element, len(table))
	for _, e := range table {
		m[e.Symbol] = e
	}
	return m
}()
