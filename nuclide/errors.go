package nuclide

import "errors"

// Sentinel errors for composition construction and token parsing.
var (
	// ErrTooManyAtoms indicates a composition with more than MaxAtoms atoms.
	ErrTooManyAtoms = errors.New("nuclide: composition exceeds maximum number of atoms")

	// ErrUnknownElement indicates a token naming no element of the periodic table.
	ErrUnknownElement = errors.New("nuclide: unknown element symbol")

	// ErrBadIsotopeToken indicates a malformed or physically impossible
	// <symbol>-<mass_number> token.
	ErrBadIsotopeToken = errors.New("nuclide: malformed isotope token")
)
