package nuclide

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxAtoms bounds the number of atoms in one molecular-ion composition.
const MaxAtoms = 32

type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotElement
	slotIsotope
)

// Slot is one atom position of a Composition: empty, an element with the
// isotope left open, or a concrete isotope. The sum type replaces the
// wire-level neutron sentinel so the two can never be confused in memory.
type Slot struct {
	kind     slotKind
	protons  uint8
	neutrons uint8
}

// EmptySlot returns the "no atom here" slot.
func EmptySlot() Slot { return Slot{} }

// ElementSlot returns a slot holding an element whose isotope is left to
// the combinatorial expansion.
func ElementSlot(protons uint8) Slot {
	return Slot{kind: slotElement, protons: protons}
}

// IsotopeSlot returns a slot pinned to one concrete isotope; the
// expansion will not branch over it.
func IsotopeSlot(protons, neutrons uint8) Slot {
	return Slot{kind: slotIsotope, protons: protons, neutrons: neutrons}
}

// IsEmpty reports whether the slot holds no atom.
func (s Slot) IsEmpty() bool { return s.kind == slotEmpty }

// IsElement reports whether the slot holds an element with an open isotope.
func (s Slot) IsElement() bool { return s.kind == slotElement }

// IsIsotope reports whether the slot is pinned to a concrete isotope.
func (s Slot) IsIsotope() bool { return s.kind == slotIsotope }

// Protons reports the slot's proton count; 0 for the empty slot.
func (s Slot) Protons() uint8 { return s.protons }

// Isotope reports the concrete nuclide hash of a pinned slot.
// ok is false for empty and element slots.
func (s Slot) Isotope() (h Hash, ok bool) {
	if s.kind != slotIsotope {
		return 0, false
	}
	return HashOf(s.protons, s.neutrons), true
}

// Encode renders the slot in the wire encoding: 0 for empty, the
// AnyIsotope neutron sentinel for element slots, the packed pair for
// isotope slots.
func (s Slot) Encode() Hash {
	switch s.kind {
	case slotElement:
		return HashOf(s.protons, AnyIsotope)
	case slotIsotope:
		return HashOf(s.protons, s.neutrons)
	default:
		return 0
	}
}

// DecodeSlot inverts Encode.
func DecodeSlot(h Hash) Slot {
	switch {
	case h.IsZero():
		return EmptySlot()
	case h.IsElement():
		return ElementSlot(h.Protons())
	default:
		return IsotopeSlot(h.Protons(), h.Neutrons())
	}
}

// String renders the slot like a composition token.
func (s Slot) String() string {
	switch s.kind {
	case slotElement:
		return Symbol(s.protons)
	case slotIsotope:
		return Symbol(s.protons) + "-" + strconv.Itoa(int(s.protons)+int(s.neutrons))
	default:
		return ""
	}
}

// Composition is the ordered atom list of one (molecular) ion. Non-empty
// slots are packed from the front and sorted descending by wire hash, so
// equal multisets of tokens always produce the same composition.
type Composition struct {
	slots []Slot
}

// NewComposition builds a composition from the given slots. Empty slots
// are dropped, the rest are stably sorted descending by wire hash and
// packed from the front. More than MaxAtoms non-empty slots is an error.
func NewComposition(slots ...Slot) (Composition, error) {
	packed := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if !s.IsEmpty() {
			packed = append(packed, s)
		}
	}
	if len(packed) > MaxAtoms {
		return Composition{}, fmt.Errorf("%w: %d atoms", ErrTooManyAtoms, len(packed))
	}
	sort.SliceStable(packed, func(i, j int) bool {
		return packed[i].Encode() > packed[j].Encode()
	})
	return Composition{slots: packed}, nil
}

// Parse builds a composition from ranging-file tokens. A bare element
// symbol ("Cr") leaves the isotope open; "<symbol>-<mass_number>"
// ("Fe-56") pins it. Whether a pinned isotope actually exists in the
// nuclide table in use is checked by the engine, not here.
func Parse(tokens ...string) (Composition, error) {
	slots := make([]Slot, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		s, err := parseToken(tok)
		if err != nil {
			return Composition{}, err
		}
		slots = append(slots, s)
	}
	return NewComposition(slots...)
}

func parseToken(tok string) (Slot, error) {
	sym, massStr, pinned := strings.Cut(tok, "-")
	protons, ok := ProtonNumber(sym)
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q", ErrUnknownElement, tok)
	}
	if !pinned {
		return ElementSlot(protons), nil
	}
	massNumber, err := strconv.Atoi(massStr)
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q", ErrBadIsotopeToken, tok)
	}
	neutrons := massNumber - int(protons)
	if neutrons < 0 || neutrons >= int(AnyIsotope) {
		return Slot{}, fmt.Errorf("%w: %q", ErrBadIsotopeToken, tok)
	}
	return IsotopeSlot(protons, uint8(neutrons)), nil
}

// Len reports the number of atoms.
func (c Composition) Len() int { return len(c.slots) }

// Slot reports the i-th atom slot.
func (c Composition) Slot(i int) Slot { return c.slots[i] }

// Slots reports a copy of the packed slots.
func (c Composition) Slots() []Slot {
	out := make([]Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// Encode renders the composition as a fixed-length wire vector of
// MaxAtoms hashes, packed from the front, zero-padded.
func (c Composition) Encode() [MaxAtoms]Hash {
	var vec [MaxAtoms]Hash
	for i, s := range c.slots {
		vec[i] = s.Encode()
	}
	return vec
}

// String renders the composition as space-separated tokens.
func (c Composition) String() string {
	parts := make([]string, len(c.slots))
	for i, s := range c.slots {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
