package nuclide

import (
	"fmt"
	"strconv"
)

// AnyIsotope is the reserved neutron count that encodes "this element,
// isotope unspecified" on the wire. It is valid only inside composition
// tokens; it never keys a nuclide table entry.
const AnyIsotope uint8 = 255

// Hash packs a (protons, neutrons) pair bijectively into a uint16 as
// protons + 256·neutrons. The zero value encodes "no nuclide".
type Hash uint16

// HashOf encodes a proton/neutron pair.
func HashOf(protons, neutrons uint8) Hash {
	return Hash(uint16(protons) + 256*uint16(neutrons))
}

// Protons reports the proton count encoded in h.
func (h Hash) Protons() uint8 { return uint8(h % 256) }

// Neutrons reports the neutron count encoded in h.
func (h Hash) Neutrons() uint8 { return uint8(h / 256) }

// IsZero reports whether h encodes no nuclide at all.
func (h Hash) IsZero() bool { return h == 0 }

// IsElement reports whether h carries the AnyIsotope neutron sentinel,
// i.e. names an element rather than a concrete isotope.
func (h Hash) IsElement() bool { return h.Neutrons() == AnyIsotope }

// MassNumber reports protons+neutrons. Meaningful only for concrete
// isotope hashes; element-sentinel hashes have no mass number.
func (h Hash) MassNumber() int { return int(h.Protons()) + int(h.Neutrons()) }

// String renders h for diagnostics: "56Fe" for isotopes, "Fe" for
// element-sentinel hashes, "0" for the zero hash.
func (h Hash) String() string {
	if h.IsZero() {
		return "0"
	}
	sym := Symbol(h.Protons())
	if sym == "" {
		return fmt.Sprintf("nuclide(%d,%d)", h.Protons(), h.Neutrons())
	}
	if h.IsElement() {
		return sym
	}
	return strconv.Itoa(h.MassNumber()) + sym
}
