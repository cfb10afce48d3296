package ranging

import (
	"fmt"
	"sort"

	"github.com/averkan/iontype/atomdata"
	"github.com/averkan/iontype/nuclide"
)

// Table is the process-wide nuclide reference: every isotope that
// survived the eligibility policy, plus a per-element index for
// deterministic enumeration. Immutable after Build; safe for any number
// of concurrent readers.
type Table struct {
	nuclides map[nuclide.Hash]nuclide.Nuclide
	index    map[uint8][]nuclide.Hash // protons -> hashes, sorted descending
}

// Build constructs a Table from an atomic data source under the given
// policy. An isotope is eligible iff its abundance is at least
// policy.MinAbundance AND it is observationally stable or has a known
// half-life of at least policy.MinHalfLife seconds. Isotopes with
// unknown half-life are excluded entirely.
//
// A failing source is fatal: the error wraps the source's error (which
// in turn wraps atomdata.ErrUnavailable for conforming sources) and no
// partial table is produced.
func Build(src atomdata.Source, pol Policy) (*Table, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := pol.Validate(); err != nil {
		return nil, err
	}
	records, err := src.Records()
	if err != nil {
		return nil, fmt.Errorf("ranging: build nuclide table: %w", err)
	}

	t := &Table{
		nuclides: make(map[nuclide.Hash]nuclide.Nuclide, len(records)),
		index:    make(map[uint8][]nuclide.Hash),
	}
	for _, rec := range records {
		if rec.Protons == 0 || rec.Neutrons == nuclide.AnyIsotope {
			continue // not a real nuclide
		}
		if rec.Abundance < pol.MinAbundance {
			continue
		}
		if !rec.HalfLife.AtLeast(pol.MinHalfLife) {
			continue
		}
		n := rec.Nuclide()
		h := n.Hash()
		if _, dup := t.nuclides[h]; dup {
			continue // first record wins
		}
		t.nuclides[h] = n
		t.index[n.Protons] = append(t.index[n.Protons], h)
	}
	for _, hashes := range t.index {
		sort.Slice(hashes, func(i, j int) bool { return hashes[i] > hashes[j] })
	}
	return t, nil
}

// Len reports the number of eligible nuclides.
func (t *Table) Len() int { return len(t.nuclides) }

// Lookup reports the nuclide behind a concrete hash.
func (t *Table) Lookup(h nuclide.Hash) (n nuclide.Nuclide, ok bool) {
	n, ok = t.nuclides[h]
	return n, ok
}

// IsotopesOf reports the eligible isotopes of an element, sorted
// descending by hash. The slice is freshly allocated on each call; see
// isotopesOf for the engine-internal shared view.
func (t *Table) IsotopesOf(protons uint8) []nuclide.Hash {
	shared := t.index[protons]
	out := make([]nuclide.Hash, len(shared))
	copy(out, shared)
	return out
}

// isotopesOf returns the table-owned slice. Callers must not mutate it.
func (t *Table) isotopesOf(protons uint8) []nuclide.Hash {
	return t.index[protons]
}

// Elements reports the proton numbers with at least one eligible
// isotope, ascending.
func (t *Table) Elements() []uint8 {
	out := make([]uint8, 0, len(t.index))
	for p := range t.index {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
