package ranging

// Resolution is the outcome of the charge-state decision.
//
// ChargeState 0 with Resolved false is the documented "unresolved or
// ambiguous" outcome — a normal value, distinguishable from a genuine
// solution because Expand never emits charge 0. Candidates carries the
// post-filter candidate set in first-occurrence order as provenance for
// logging or inspection, whatever the decision was.
type Resolution struct {
	ChargeState int8
	Resolved    bool
	Candidates  []Candidate
}

// Resolve filters the raw candidates by policy and decides whether a
// single charge state can be asserted.
//
// Filtering keeps candidates whose abundance product reaches
// pol.MinAbundanceProduct and whose shortest half-life is known and
// reaches pol.MinHalfLife, deduplicated by isotope-multiset+charge key
// (first occurrence wins). The decision over the relevant set:
//
//   - none     → unresolved, no physically consistent assignment
//   - exactly 1 → that candidate's charge, resolved
//   - several, all sharing one charge → that charge if
//     pol.SacrificeIsotopicUniqueness (the isotopic identity stays
//     ambiguous, the charge does not); otherwise unresolved
//   - several, charges differ → unresolved
//
// Ambiguity never raises an error; the only error is an invalid policy.
func Resolve(candidates []Candidate, pol Policy) (Resolution, error) {
	if err := pol.Validate(); err != nil {
		return Resolution{}, err
	}

	var relevant []Candidate
	seen := make(map[string]struct{}, len(candidates))
	for _, cand := range candidates {
		if cand.AbundanceProduct < pol.MinAbundanceProduct {
			continue
		}
		if !cand.ShortestHalfLife.AtLeast(pol.MinHalfLife) {
			continue
		}
		key := cand.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		relevant = append(relevant, cand)
	}

	switch len(relevant) {
	case 0:
		return Resolution{}, nil
	case 1:
		return Resolution{ChargeState: relevant[0].ChargeState, Resolved: true, Candidates: relevant}, nil
	}

	charge := relevant[0].ChargeState
	for _, cand := range relevant[1:] {
		if cand.ChargeState != charge {
			// charge itself is ambiguous
			return Resolution{Candidates: relevant}, nil
		}
	}
	if pol.SacrificeIsotopicUniqueness {
		return Resolution{ChargeState: charge, Resolved: true, Candidates: relevant}, nil
	}
	// same charge everywhere, but the isotopic identity cannot be asserted
	return Resolution{Candidates: relevant}, nil
}
