package ranging

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/averkan/iontype/nuclide"
)

// Candidate is one leaf of the combinatorial search: a fully resolved
// isotope combination together with a charge state whose mass-to-charge
// ratio falls inside the queried interval. Candidates are created only
// by Expand and are immutable afterwards.
type Candidate struct {
	// Nuclides holds one concrete isotope hash per atom, in composition
	// slot order.
	Nuclides []nuclide.Hash

	// ChargeState is the charge in elementary charges, in
	// [1, Policy.MaxCharge]. Expand never emits 0.
	ChargeState int8

	// Mass is the summed atomic mass in Da. Mass loss due to the charge
	// state is considered insignificant.
	Mass float64

	// AbundanceProduct is the product of the isotopes' natural abundances.
	AbundanceProduct float64

	// ShortestHalfLife is the minimum half-life across the isotopes;
	// Unknown if any isotope's half-life is unknown.
	ShortestHalfLife nuclide.HalfLife
}

// Key is the dedup identity of a candidate: the isotope multiset
// (slot order ignored) plus the charge state.
func (c Candidate) Key() string {
	sorted := make([]nuclide.Hash, len(c.Nuclides))
	copy(sorted, c.Nuclides)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	var b strings.Builder
	for _, h := range sorted {
		b.WriteString(strconv.Itoa(int(h)))
		b.WriteByte('_')
	}
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(int(c.ChargeState)))
	return b.String()
}

// Expand enumerates every isotope-combination × charge-state candidate
// of the composition whose mass-to-charge ratio lies inside the
// interval.
//
// Algorithm:
//  1. Per slot, determine the branch set: the element's eligible
//     isotopes (descending hash order) for open slots, exactly one
//     nuclide for pinned slots. A pinned isotope missing from the table
//     is an input error; an element with no eligible isotopes simply
//     contributes no branches.
//  2. Depth-first over slots, carrying an explicit path of chosen
//     hashes (one arena slot per recursion level, no shared mutable
//     accumulator across siblings).
//  3. At each leaf, compute total mass, abundance product and shortest
//     half-life, then walk charges c = 1..MaxCharge:
//     ratio = mass/c. ratio < interval.Low stops the walk — the ratio
//     only shrinks as c grows, it cannot re-enter from below. ratio >
//     interval.High skips to the next charge — a larger c can still
//     bring the ratio down into the window. Otherwise emit a Candidate.
//
// An empty composition yields an empty candidate list. An insignificant
// interval is refused with ErrInsignificantInterval before any search
// work happens.
func Expand(comp nuclide.Composition, iv nuclide.Interval, t *Table, pol Policy) ([]Candidate, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if err := pol.Validate(); err != nil {
		return nil, err
	}
	if !iv.Significant() {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInsignificantInterval, iv.Low, iv.High)
	}
	depth := comp.Len()
	if depth == 0 {
		return nil, nil
	}

	branches := make([][]nuclide.Hash, depth)
	for i := 0; i < depth; i++ {
		slot := comp.Slot(i)
		if h, pinned := slot.Isotope(); pinned {
			if _, ok := t.Lookup(h); !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownNuclide, h)
			}
			branches[i] = []nuclide.Hash{h}
			continue
		}
		branches[i] = t.isotopesOf(slot.Protons())
	}

	e := expansion{table: t, interval: iv, maxCharge: int8(pol.MaxCharge), branches: branches, path: make([]nuclide.Hash, depth)}
	e.walk(0)
	return e.out, nil
}

// expansion carries the recursion state of one Expand call.
type expansion struct {
	table     *Table
	interval  nuclide.Interval
	maxCharge int8
	branches  [][]nuclide.Hash
	path      []nuclide.Hash
	out       []Candidate
}

func (e *expansion) walk(depth int) {
	last := depth == len(e.branches)-1
	for _, h := range e.branches[depth] {
		e.path[depth] = h
		if !last {
			e.walk(depth + 1)
			continue
		}
		e.emit()
	}
}

// emit evaluates the completed path and walks its charge states.
func (e *expansion) emit() {
	mass := 0.0
	abundance := 1.0
	shortest := nuclide.Stable()
	for _, h := range e.path {
		n, _ := e.table.Lookup(h)
		mass += n.Mass
		abundance *= n.Abundance
		shortest = shortest.Min(n.HalfLife)
	}
	for charge := int8(1); charge <= e.maxCharge; charge++ {
		ratio := mass / float64(charge)
		if ratio < e.interval.Low {
			break
		}
		if ratio > e.interval.High {
			continue
		}
		resolved := make([]nuclide.Hash, len(e.path))
		copy(resolved, e.path)
		e.out = append(e.out, Candidate{
			Nuclides:         resolved,
			ChargeState:      charge,
			Mass:             mass,
			AbundanceProduct: abundance,
			ShortestHalfLife: shortest,
		})
	}
}
