// Package atomdata defines the contract between the resolution engine
// and its atomic reference data: per-isotope atomic mass, natural
// abundance and half-life.
//
// The engine treats the provider as external: anything able to return a
// flat list of Records satisfies Source. A failing source is fatal for
// table construction (there is no partial table), signalled by an error
// wrapping ErrUnavailable.
//
// Embedded returns the bundled provider, a curated NIST-derived isotope
// table for the elements that matter in practical atom-probe work. It is
// the dataset used by this module's tests; deployments with their own
// atomic data plug in a different Source.
package atomdata
