// Package ion models the in-memory ion record a ranging-file reader
// builds per entry: the composition, its mass-to-charge ranges, the
// charge state recovered by the ranging engine, and the full
// charge-state model (policy plus surviving candidates) as provenance.
//
// Readers construct an Ion per range definition, add the intervals the
// file records, then call ApplyRanging with a shared ranging.Table —
// built once per process — and a Policy. Human-readable names follow the
// atom-probe convention: "Cr Cr O ++" for an ion ranged by elements,
// "54Cr 54Cr 18O ++" when isotopes are pinned, no charge suffix while
// the charge is unresolved.
package ion
