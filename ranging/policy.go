package ranging

import "math"

// DefaultMaxCharge is the default upper bound on the charge-state walk.
// Seven reflects practical atom-probe experience, not physics; override
// it per Policy when an instrument says otherwise.
const DefaultMaxCharge = 7

// Policy carries the tunable knobs of the resolution engine.
//
// MinAbundance and MinHalfLife act at table-build time (isotope
// eligibility); MinAbundanceProduct and MinHalfLife act again as
// post-hoc candidate filters in Resolve; SacrificeIsotopicUniqueness and
// MaxCharge steer the decision heuristic and the expansion.
type Policy struct {
	// MinAbundance excludes isotopes below this natural abundance from
	// the nuclide table. 0 keeps every reported isotope.
	MinAbundance float64

	// MinAbundanceProduct drops candidates whose per-isotope abundance
	// product falls below this threshold.
	MinAbundanceProduct float64

	// MinHalfLife is the minimum acceptable half-life in seconds.
	// Observationally stable isotopes always qualify; +Inf therefore
	// means "stable isotopes only". Isotopes with unknown half-life are
	// excluded regardless — likely irrelevant for practical atom-probe
	// experiments, a stated simplification of the domain.
	MinHalfLife float64

	// SacrificeIsotopicUniqueness asserts a charge state even when
	// several isotopically different candidates share it. Without it,
	// such a tie counts as unresolved.
	SacrificeIsotopicUniqueness bool

	// MaxCharge bounds the charge-state walk, inclusive.
	MaxCharge int
}

// DefaultPolicy mirrors the defaults callers use in practice: keep every
// isotope the source reports, no abundance-product floor, stable
// isotopes only, assert charge across isotopic ties, charges up to 7.
func DefaultPolicy() Policy {
	return Policy{
		MinAbundance:                0,
		MinAbundanceProduct:         0,
		MinHalfLife:                 math.Inf(1),
		SacrificeIsotopicUniqueness: true,
		MaxCharge:                   DefaultMaxCharge,
	}
}

// Validate reports the first invalid knob, if any.
func (p Policy) Validate() error {
	if math.IsNaN(p.MinAbundance) || p.MinAbundance < 0 {
		return ErrBadMinAbundance
	}
	if math.IsNaN(p.MinAbundanceProduct) || p.MinAbundanceProduct < 0 {
		return ErrBadMinAbundanceProduct
	}
	if math.IsNaN(p.MinHalfLife) || p.MinHalfLife < 0 {
		return ErrBadMinHalfLife
	}
	if p.MaxCharge < 1 || p.MaxCharge > 127 {
		return ErrBadMaxCharge
	}
	return nil
}
