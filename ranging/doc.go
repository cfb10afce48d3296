// Package ranging resolves the molecular-ion identity behind a ranging
// definition: given an element composition and a mass-to-charge interval
// — the only two things a ranging file stores — it reconstructs which
// isotope combinations and which integer charge state are physically
// consistent with the interval.
//
// 🚀 Pipeline:
//
//	src := atomdata.Embedded()
//	tbl, err := ranging.Build(src, ranging.DefaultPolicy())  // once per process
//	comp, _ := nuclide.Parse("Cr", "Cr", "O")
//	cands, err := ranging.Expand(comp, nuclide.Interval{Low: 57.819, High: 61.159}, tbl, pol)
//	res, err := ranging.Resolve(cands, pol)
//	// res.ChargeState == 2, res.Resolved == true
//
// Expand walks the Cartesian product of the eligible isotopes of every
// composition slot; for each completed isotope combination it walks
// charge states upward, exploiting that mass/charge only decreases: once
// the ratio falls below the interval the walk stops, while ratios above
// the interval merely skip to the next charge. Resolve then filters the
// candidates by abundance and half-life policy and decides whether a
// single charge state can be asserted.
//
// Ambiguity is a value, not an error: a Resolution with ChargeState 0
// and Resolved false says "no unique physical assignment", and carries
// the surviving candidates as provenance. Expand never emits charge 0,
// so the sentinel cannot collide with a real solution.
//
// Complexity of Expand: O(∏ᵢ |isotopes(elementᵢ)| · MaxCharge) per
// composition — bounded in practice, elements rarely have more than ten
// eligible isotopes and compositions are short.
//
// The Table is immutable after Build and safe for concurrent readers;
// build it once and share it (the expensive step is walking the atomic
// data source, everything after is pure computation).
package ranging
