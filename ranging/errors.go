package ranging

import "errors"

// Sentinel errors for table construction and engine boundaries.
var (
	// ErrNilSource indicates Build was called without an atomic data source.
	ErrNilSource = errors.New("ranging: atomic data source is nil")

	// ErrNilTable indicates an engine call without a built nuclide table.
	ErrNilTable = errors.New("ranging: nuclide table is nil")

	// ErrInsignificantInterval indicates a mass-to-charge interval too
	// narrow (or malformed) to range against. Such intervals must be
	// rejected before the combinatorial search runs.
	ErrInsignificantInterval = errors.New("ranging: mass-to-charge interval is not significant")

	// ErrUnknownNuclide indicates a composition slot pinned to an isotope
	// absent from the nuclide table in use.
	ErrUnknownNuclide = errors.New("ranging: isotope not present in nuclide table")

	// ErrBadMinAbundance indicates a negative or NaN MinAbundance.
	ErrBadMinAbundance = errors.New("ranging: MinAbundance must be a non-negative number")

	// ErrBadMinAbundanceProduct indicates a negative or NaN MinAbundanceProduct.
	ErrBadMinAbundanceProduct = errors.New("ranging: MinAbundanceProduct must be a non-negative number")

	// ErrBadMinHalfLife indicates a negative or NaN MinHalfLife.
	ErrBadMinHalfLife = errors.New("ranging: MinHalfLife must be a non-negative number of seconds")

	// ErrBadMaxCharge indicates a MaxCharge outside [1, 127].
	ErrBadMaxCharge = errors.New("ranging: MaxCharge must be in [1, 127]")
)
