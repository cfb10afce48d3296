// Package iontype recovers isotopic identity and charge state for the
// (molecular) ions behind atom-probe-tomography ranging definitions —
// mass-to-charge intervals labelled with a bare element composition.
//
// 🚀 What is iontype?
//
//	Ranging files (RNG/RRNG/ENV and friends) record which elements make up
//	an ion and where its peak sits on the mass-to-charge axis, but neither
//	the isotopes involved nor the charge state. iontype reconstructs both:
//		• nuclide   — identities, hash encoding, compositions, intervals
//		• atomdata  — the atomic reference data contract + bundled provider
//		• ranging   — the combinatorial charge-state resolution engine
//		• ion       — caller-side ion records, naming, provenance
//
// ✨ Why choose iontype?
//
//   - Deterministic – identical inputs always yield identical results
//   - Honest about ambiguity – "unresolved" is a value, never a panic
//   - Pure functions – build the nuclide table once, share it freely
//   - Configurable – abundance, half-life and charge bounds are policy,
//     not constants
//
// Quick sketch of the pipeline:
//
//	atomdata.Source ──▶ ranging.Table ──▶ ranging.Expand ──▶ ranging.Resolve
//	                                                              │
//	                                            ion.Ion ◀────────┘
//
// A range [57.819, 61.159] Da labelled Cr:2 O:1 expands to every
// ⁵⁰/⁵²/⁵³/⁵⁴Cr × ¹⁶/¹⁷/¹⁸O combination at every charge state that lands
// inside the interval, then collapses to the single physically consistent
// charge (here: 2+).
//
//	go get github.com/averkan/iontype
package iontype
