package ion

import (
	"strconv"
	"strings"

	"github.com/averkan/iontype/nuclide"
)

// Name renders a composition plus charge in the atom-probe convention:
// pinned isotopes as mass number + symbol ("56Fe"), open element slots
// as the bare symbol, atoms space-separated, the charge as a run of "+"
// or "-". Charge 0 leaves no suffix.
func Name(comp nuclide.Composition, charge int8) string {
	var b strings.Builder
	for i := 0; i < comp.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		slot := comp.Slot(i)
		if h, pinned := slot.Isotope(); pinned {
			b.WriteString(strconv.Itoa(h.MassNumber()))
		}
		b.WriteString(nuclide.Symbol(slot.Protons()))
	}
	switch {
	case charge > 0:
		b.WriteByte(' ')
		b.WriteString(strings.Repeat("+", int(charge)))
	case charge < 0:
		b.WriteByte(' ')
		b.WriteString(strings.Repeat("-", int(-charge)))
	}
	return b.String()
}

// DictKeyword renders the composition as the underscore-joined wire
// hashes of its atoms, the keyword convention persisted ion dictionaries
// key on. The empty composition maps to "0".
func DictKeyword(comp nuclide.Composition) string {
	if comp.Len() == 0 {
		return "0"
	}
	parts := make([]string, comp.Len())
	for i := 0; i < comp.Len(); i++ {
		parts[i] = strconv.Itoa(int(comp.Slot(i).Encode()))
	}
	return strings.Join(parts, "_")
}

// NuclideList renders the NeXus-style nuclide list: one [massNumber,
// protons] row per atom, mass number 0 when the isotope is open.
func NuclideList(comp nuclide.Composition) [][2]uint16 {
	out := make([][2]uint16, comp.Len())
	for i := 0; i < comp.Len(); i++ {
		slot := comp.Slot(i)
		row := [2]uint16{0, uint16(slot.Protons())}
		if h, pinned := slot.Isotope(); pinned {
			row[0] = uint16(h.MassNumber())
		}
		out[i] = row
	}
	return out
}
