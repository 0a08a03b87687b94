package periodic

// table lists the elements in atomic-number order. Electronegativities are
// Pauling values (0 where no accepted value exists); covalent radii follow
// Cordero et al. (2008).
var table = []Element{
	{"H", 1, 2.20, 0.31, Nonmetal},
	{"He", 2, 0, 0.28, NobleGas},
	{"Li", 3, 0.98, 1.28, AlkaliMetal},
	{"Be", 4, 1.57, 0.96, AlkalineEarthMetal},
	{"B", 5, 2.04, 0.84, Metalloid},
	{"C", 6, 2.55, 0.76, Nonmetal},
	{"N", 7, 3.04, 0.71, Nonmetal},
	{"O", 8, 3.44, 0.66, Nonmetal},
	{"F", 9, 3.98, 0.57, Halogen},
	{"Ne", 10, 0, 0.58, NobleGas},
	{"Na", 11, 0.93, 1.66, AlkaliMetal},
	{"Mg", 12, 1.31, 1.41, AlkalineEarthMetal},
	{"Al", 13, 1.61, 1.21, PostTransitionMetal},
	{"Si", 14, 1.90, 1.11, Metalloid},
	{"P", 15, 2.19, 1.07, Nonmetal},
	{"S", 16, 2.58, 1.05, Nonmetal},
	{"Cl", 17, 3.16, 1.02, Halogen},
	{"Ar", 18, 0, 1.06, NobleGas},
	{"K", 19, 0.82, 2.03, AlkaliMetal},
	{"Ca", 20, 1.00, 1.76, AlkalineEarthMetal},
	{"Sc", 21, 1.36, 1.70, TransitionMetal},
	{"Ti", 22, 1.54, 1.60, TransitionMetal},
	{"V", 23, 1.63, 1.53, TransitionMetal},
	{"Cr", 24, 1.66, 1.39, TransitionMetal},
	{"Mn", 25, 1.55, 1.39, TransitionMetal},
	{"Fe", 26, 1.83, 1.32, TransitionMetal},
	{"Co", 27, 1.88, 1.26, TransitionMetal},
	{"Ni", 28, 1.91, 1.24, TransitionMetal},
	{"Cu", 29, 1.90, 1.32, TransitionMetal},
	{"Zn", 30, 1.65, 1.22, TransitionMetal},
	{"Ga", 31, 1.81, 1.22, PostTransitionMetal},
	{"Ge", 32, 2.01, 1.20, Metalloid},
	{"As", 33, 2.18, 1.19, Metalloid},
	{"Se", 34, 2.55, 1.20, Nonmetal},
	{"Br", 35, 2.96, 1.20, Halogen},
	{"Kr", 36, 3.00, 1.16, NobleGas},
	{"Rb", 37, 0.82, 2.20, AlkaliMetal},
	{"Sr", 38, 0.95, 1.95, AlkalineEarthMetal},
	{"Y", 39, 1.22, 1.90, TransitionMetal},
	{"Zr", 40, 1.33, 1.75, TransitionMetal},
	{"Nb", 41, 1.60, 1.64, TransitionMetal},
	{"Mo", 42, 2.16, 1.54, TransitionMetal},
	{"Tc", 43, 1.90, 1.47, TransitionMetal},
	{"Ru", 44, 2.20, 1.46, TransitionMetal},
	{"Rh", 45, 2.28, 1.42, TransitionMetal},
	{"Pd", 46, 2.20, 1.39, TransitionMetal},
	{"Ag", 47, 1.93, 1.45, TransitionMetal},
	{"Cd", 48, 1.69, 1.44, TransitionMetal},
	{"In", 49, 1.78, 1.42, PostTransitionMetal},
	{"Sn", 50, 1.96, 1.39, PostTransitionMetal},
	{"Sb", 51, 2.05, 1.39, Metalloid},
	{"Te", 52, 2.10, 1.38, Metalloid},
	{"I", 53, 2.66, 1.39, Halogen},
	{"Xe", 54, 2.60, 1.40, NobleGas},
	{"Cs", 55, 0.79, 2.44, AlkaliMetal},
	{"Ba", 56, 0.89, 2.15, AlkalineEarthMetal},
	{"La", 57, 1.10, 2.07, Lanthanoid},
	{"Ce", 58, 1.12, 2.04, Lanthanoid},
	{"Pr", 59, 1.13, 2.03, Lanthanoid},
	{"Nd", 60, 1.14, 2.01, Lanthanoid},
	{"Pm", 61, 1.13, 1.99, Lanthanoid},
	{"Sm", 62, 1.17, 1.98, Lanthanoid},
	{"Eu", 63, 1.20, 1.98, Lanthanoid},
	{"Gd", 64, 1.20, 1.96, Lanthanoid},
	{"Tb", 65, 1.22, 1.94, Lanthanoid},
	{"Dy", 66, 1.22, 1.92, Lanthanoid},
	{"Ho", 67, 1.23, 1.92, Lanthanoid},
	{"Er", 68, 1.24, 1.89, Lanthanoid},
	{"Tm", 69, 1.25, 1.90, Lanthanoid},
	{"Yb", 70, 1.10, 1.87, Lanthanoid},
	{"Lu", 71, 1.27, 1.87, Lanthanoid},
	{"Hf", 72, 1.30, 1.75, TransitionMetal},
	{"Ta", 73, 1.50, 1.70, TransitionMetal},
	{"W", 74, 2.36, 1.62, TransitionMetal},
	{"Re", 75, 1.90, 1.51, TransitionMetal},
	{"Os", 76, 2.20, 1.44, TransitionMetal},
	{"Ir", 77, 2.20, 1.41, TransitionMetal},
	{"Pt", 78, 2.28, 1.36, TransitionMetal},
	{"Au", 79, 2.54, 1.36, TransitionMetal},
	{"Hg", 80, 2.00, 1.32, TransitionMetal},
	{"Tl", 81, 1.62, 1.45, PostTransitionMetal},
	{"Pb", 82, 2.33, 1.46, PostTransitionMetal},
	{"Bi", 83, 2.02, 1.48, PostTransitionMetal},
	{"Po", 84, 2.00, 1.40, PostTransitionMetal},
	{"At", 85, 2.20, 1.50, Halogen},
	{"Rn", 86, 0, 1.50, NobleGas},
	{"Fr", 87, 0.70, 2.60, AlkaliMetal},
	{"Ra", 88, 0.90, 2.21, AlkalineEarthMetal},
	{"Ac", 89, 1.10, 2.15, Actinoid},
	{"Th", 90, 1.30, 2.06, Actinoid},
	{"Pa", 91, 1.50, 2.00, Actinoid},
	{"U", 92, 1.38, 1.96, Actinoid},
	{"Np", 93, 1.36, 1.90, Actinoid},
	{"Pu", 94, 1.28, 1.87, Actinoid},
	{"Am", 95, 1.30, 1.80, Actinoid},
	{"Cm", 96, 1.30, 1.69, Actinoid},
}
