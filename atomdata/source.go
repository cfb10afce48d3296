package atomdata

import (
	"errors"

	"github.com/averkan/iontype/nuclide"
)

// ErrUnavailable indicates the atomic data source is missing or
// malformed. Table construction wraps it and aborts; no partial table is
// ever produced.
var ErrUnavailable = errors.New("atomdata: atomic data source unavailable")

// Record is one isotope as reported by an atomic data source.
type Record struct {
	// Protons is the atomic number, in [1, 255].
	Protons uint8

	// Neutrons is the neutron count, in [0, 254].
	Neutrons uint8

	// Mass is the atomic mass in Da.
	Mass float64

	// Abundance is the natural abundance in [0, 1]; 0 for nuclides not
	// found in nature.
	Abundance float64

	// HalfLife classifies the nuclide's stability. Sources that lack
	// half-life data for a nuclide report nuclide.Unknown(); the build
	// policy decides what to do with it.
	HalfLife nuclide.HalfLife
}

// Nuclide converts the record into the engine's nuclide type.
func (r Record) Nuclide() nuclide.Nuclide {
	return nuclide.Nuclide{
		Protons:   r.Protons,
		Neutrons:  r.Neutrons,
		Mass:      r.Mass,
		Abundance: r.Abundance,
		HalfLife:  r.HalfLife,
	}
}

// Source supplies the full isotope inventory of an atomic data provider.
//
// Records returns every known isotope in one pass. Implementations
// return an error wrapping ErrUnavailable when the underlying data
// cannot be read; they never return a partial inventory alongside one.
type Source interface {
	Records() ([]Record, error)
}
