package nuclide

// symbols lists element symbols indexed by proton number, 1..118.
// Index 0 is the vacancy placeholder and never a valid element.
var symbols = [...]string{
	"", "H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// protonNumbers inverts symbols for O(1) lookup.
var protonNumbers = func() map[string]uint8 {
	m := make(map[string]uint8, len(symbols))
	for p := 1; p < len(symbols); p++ {
		m[symbols[p]] = uint8(p)
	}
	return m
}()

// Symbol reports the element symbol for a proton number, or "" when the
// proton number names no known element.
func Symbol(protons uint8) string {
	if int(protons) >= len(symbols) {
		return ""
	}
	return symbols[protons]
}

// ProtonNumber resolves an element symbol ("Fe") to its proton number.
func ProtonNumber(symbol string) (protons uint8, ok bool) {
	protons, ok = protonNumbers[symbol]
	return protons, ok
}

// Symbols reports every element symbol, two-letter symbols first so that
// greedy text matching never mistakes "He" for "H". The slice is freshly
// allocated on each call.
func Symbols() []string {
	out := make([]string, 0, len(symbols)-1)
	for p := 1; p < len(symbols); p++ {
		if len(symbols[p]) == 2 {
			out = append(out, symbols[p])
		}
	}
	for p := 1; p < len(symbols); p++ {
		if len(symbols[p]) == 1 {
			out = append(out, symbols[p])
		}
	}
	return out
}
