package nuclide

import "math"

// HalfLifeClass tags the three half-life situations the atomic data can
// report. Unknown is deliberately the zero value: a HalfLife that was
// never set claims nothing.
type HalfLifeClass uint8

const (
	// HalfLifeUnknown — no half-life data exists for the nuclide.
	HalfLifeUnknown HalfLifeClass = iota

	// HalfLifeStable — observationally stable, effectively infinite half-life.
	HalfLifeStable

	// HalfLifeFinite — radioactive with a known half-life in seconds.
	HalfLifeFinite
)

// HalfLife is a tagged half-life value. Unknown propagates through every
// combination step and never silently becomes 0 or +Inf.
type HalfLife struct {
	class   HalfLifeClass
	seconds float64
}

// Stable returns the observationally-stable half-life.
func Stable() HalfLife { return HalfLife{class: HalfLifeStable} }

// Finite returns a known half-life of the given duration in seconds.
func Finite(seconds float64) HalfLife {
	return HalfLife{class: HalfLifeFinite, seconds: seconds}
}

// Unknown returns the "no data" half-life.
func Unknown() HalfLife { return HalfLife{class: HalfLifeUnknown} }

// Class reports which of the three cases hl carries.
func (hl HalfLife) Class() HalfLifeClass { return hl.class }

// Known reports whether hl carries usable half-life information.
func (hl HalfLife) Known() bool { return hl.class != HalfLifeUnknown }

// Seconds reports the half-life duration: +Inf for stable nuclides, the
// recorded duration for finite ones. ok is false for Unknown, in which
// case the duration must not be used.
func (hl HalfLife) Seconds() (seconds float64, ok bool) {
	switch hl.class {
	case HalfLifeStable:
		return math.Inf(1), true
	case HalfLifeFinite:
		return hl.seconds, true
	default:
		return 0, false
	}
}

// AtLeast reports whether hl is known and lasts at least minSeconds.
// Stable satisfies any threshold, including +Inf; Unknown satisfies none.
func (hl HalfLife) AtLeast(minSeconds float64) bool {
	switch hl.class {
	case HalfLifeStable:
		return true
	case HalfLifeFinite:
		return hl.seconds >= minSeconds
	default:
		return false
	}
}

// Min combines two half-lives, keeping the shorter. Unknown on either
// side makes the result Unknown.
func (hl HalfLife) Min(other HalfLife) HalfLife {
	if hl.class == HalfLifeUnknown || other.class == HalfLifeUnknown {
		return Unknown()
	}
	a, _ := hl.Seconds()
	b, _ := other.Seconds()
	if b < a {
		return other
	}
	return hl
}

// Nuclide is one isotope as loaded from an atomic data source: identity
// plus the attributes the resolution engine consumes. Immutable once built.
type Nuclide struct {
	// Protons is the atomic number.
	Protons uint8

	// Neutrons is the neutron count. Never AnyIsotope for a real nuclide.
	Neutrons uint8

	// Mass is the atomic mass in Da.
	Mass float64

	// Abundance is the natural abundance in [0, 1].
	Abundance float64

	// HalfLife classifies the nuclide's stability.
	HalfLife HalfLife
}

// Hash returns the packed identity of n.
func (n Nuclide) Hash() Hash { return HashOf(n.Protons, n.Neutrons) }

// MassNumber reports protons+neutrons.
func (n Nuclide) MassNumber() int { return int(n.Protons) + int(n.Neutrons) }
