package ion

import (
	"errors"
	"fmt"

	"github.com/averkan/iontype/nuclide"
	"github.com/averkan/iontype/ranging"
)

// Sentinel errors for ion record manipulation.
var (
	// ErrInsignificantRange indicates an attempt to add an epsilon-narrow
	// or malformed mass-to-charge interval.
	ErrInsignificantRange = errors.New("ion: refusing insignificant mass-to-charge range")

	// ErrNoRanges indicates ApplyRanging on an ion without any range.
	ErrNoRanges = errors.New("ion: no mass-to-charge range to resolve against")
)

// Ion is one ranged (molecular) ion. Charge state 0 flags that the
// charge could not be recovered — usually a sign the range does not
// match the theoretically expected peak position.
type Ion struct {
	// Composition is the atom list the ranging definition names.
	Composition nuclide.Composition

	// ChargeState is the recovered charge, 0 while unresolved.
	ChargeState int8

	// Ranges holds the mass-to-charge intervals, in insertion order.
	Ranges []nuclide.Interval

	// Comment and Color carry annotation fields range files store
	// alongside the definition.
	Comment string
	Color   string

	// Model is the charge-state provenance attached by ApplyRanging;
	// nil until ranging ran.
	Model *ChargeStateModel
}

// ChargeStateModel records how the charge state was decided: the policy
// in force and the relevant candidates that survived filtering.
type ChargeStateModel struct {
	Policy     ranging.Policy
	Resolution ranging.Resolution
}

// Masses reports the per-candidate total mass vector.
func (m *ChargeStateModel) Masses() []float64 {
	out := make([]float64, len(m.Resolution.Candidates))
	for i, c := range m.Resolution.Candidates {
		out[i] = c.Mass
	}
	return out
}

// Charges reports the per-candidate charge-state vector.
func (m *ChargeStateModel) Charges() []int8 {
	out := make([]int8, len(m.Resolution.Candidates))
	for i, c := range m.Resolution.Candidates {
		out[i] = c.ChargeState
	}
	return out
}

// AbundanceProducts reports the per-candidate abundance-product vector.
func (m *ChargeStateModel) AbundanceProducts() []float64 {
	out := make([]float64, len(m.Resolution.Candidates))
	for i, c := range m.Resolution.Candidates {
		out[i] = c.AbundanceProduct
	}
	return out
}

// HalfLives reports the per-candidate shortest-half-life vector. Unknown
// stays tagged; it is never flattened to a number.
func (m *ChargeStateModel) HalfLives() []nuclide.HalfLife {
	out := make([]nuclide.HalfLife, len(m.Resolution.Candidates))
	for i, c := range m.Resolution.Candidates {
		out[i] = c.ShortestHalfLife
	}
	return out
}

// New builds an ion for a composition, charge unresolved.
func New(comp nuclide.Composition) *Ion {
	return &Ion{Composition: comp}
}

// AddRange appends a mass-to-charge interval. Insignificant intervals
// are refused here, before they can ever reach the engine. Overlap with
// previously added ranges is allowed: adjacent windows describe one
// contiguous region.
func (i *Ion) AddRange(iv nuclide.Interval) error {
	if !iv.Significant() {
		return fmt.Errorf("%w: [%g, %g]", ErrInsignificantRange, iv.Low, iv.High)
	}
	i.Ranges = append(i.Ranges, iv)
	return nil
}

// ApplyRanging runs the combinatorial engine against the first range and
// attaches the outcome: ChargeState (0 when ambiguous) and the full
// charge-state model. The table is shared, read-only state; build it
// once per process.
func (i *Ion) ApplyRanging(t *ranging.Table, pol ranging.Policy) error {
	if len(i.Ranges) == 0 {
		return ErrNoRanges
	}
	candidates, err := ranging.Expand(i.Composition, i.Ranges[0], t, pol)
	if err != nil {
		return err
	}
	res, err := ranging.Resolve(candidates, pol)
	if err != nil {
		return err
	}
	i.ChargeState = res.ChargeState
	i.Model = &ChargeStateModel{Policy: pol, Resolution: res}
	return nil
}

// Name renders the ion's human-readable name, e.g. "Cr Cr O ++".
func (i *Ion) Name() string {
	return Name(i.Composition, i.ChargeState)
}
