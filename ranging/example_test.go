package ranging_test

import (
	"fmt"

	"github.com/averkan/iontype/atomdata"
	"github.com/averkan/iontype/nuclide"
	"github.com/averkan/iontype/ranging"
)

// ExampleResolve walks the full pipeline for a beryllium range: one
// eligible isotope, one consistent charge state.
func ExampleResolve() {
	tbl, err := ranging.Build(atomdata.Embedded(), ranging.DefaultPolicy())
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	comp, _ := nuclide.Parse("Be")
	pol := ranging.DefaultPolicy()

	cands, _ := ranging.Expand(comp, nuclide.Interval{Low: 5, High: 17}, tbl, pol)
	res, _ := ranging.Resolve(cands, pol)

	fmt.Printf("charge=%d resolved=%v candidates=%d\n", res.ChargeState, res.Resolved, len(res.Candidates))
	// Output:
	// charge=1 resolved=true candidates=1
}

// ExampleResolve_ambiguous shows the chromium-oxide range where only the
// charge state, not the isotopic identity, can be recovered.
func ExampleResolve_ambiguous() {
	tbl, err := ranging.Build(atomdata.Embedded(), ranging.DefaultPolicy())
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	comp, _ := nuclide.Parse("Cr", "Cr", "O")
	iv := nuclide.Interval{Low: 57.819, High: 61.159}

	strict := ranging.DefaultPolicy()
	strict.SacrificeIsotopicUniqueness = false
	relaxed := ranging.DefaultPolicy()

	cands, _ := ranging.Expand(comp, iv, tbl, relaxed)
	loose, _ := ranging.Resolve(cands, relaxed)
	tight, _ := ranging.Resolve(cands, strict)

	fmt.Printf("sacrificed: charge=%d\n", loose.ChargeState)
	fmt.Printf("strict:     charge=%d\n", tight.ChargeState)
	// Output:
	// sacrificed: charge=2
	// strict:     charge=0
}
