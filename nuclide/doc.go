// Package nuclide defines the identity types shared by every stage of the
// charge-state resolution pipeline: nuclide hashes, half-life
// classification, ion compositions and mass-to-charge intervals.
//
// 🚀 What is a nuclide hash?
//
//	A nuclide is identified by its proton count p and neutron count n,
//	each in [0, 255]. The pair is packed bijectively into a uint16 as
//
//	    hash = p + 256·n
//
//	Ranging files name elements, not isotopes, so compositions need an
//	"this element, isotope unspecified" token. On the wire that token is
//	the reserved neutron count 255 (¹H encodes as 1, elemental hydrogen
//	as 1 + 255·256). In memory the ambiguity disappears: a composition
//	Slot is a sum type — empty, element, or concrete isotope — and the
//	sentinel only exists at the hash-encoding boundary.
//
// ✨ Key types:
//   - Hash        — packed (protons, neutrons) identity
//   - HalfLife    — Stable | Finite(seconds) | Unknown, with explicit
//     propagation of Unknown (it never collapses to a number)
//   - Slot        — one atom position of a Composition
//   - Composition — up to MaxAtoms slots, packed from the front
//   - Interval    — [low, high] mass-to-charge window with the
//     significance rule high−low ≥ Epsilon
//
// Compositions parse from the token syntax used by ranging formats:
// a bare symbol ("Cr") keeps the isotope open, "Fe-56" pins it.
package nuclide
