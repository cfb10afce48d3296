package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/averkan/iontype/atomdata"
	"github.com/averkan/iontype/ion"
	"github.com/averkan/iontype/nuclide"
	"github.com/averkan/iontype/ranging"
)

// policyFlags binds the engine policy to flags, seeded from IONTYPE_*
// environment variables (godotenv has already folded .env into those).
type policyFlags struct {
	minAbundance        float64
	minAbundanceProduct float64
	minHalfLife         float64
	sacrificeUniqueness bool
	maxCharge           int
}

func (pf *policyFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&pf.minAbundance, "min-abundance",
		envFloat("IONTYPE_MIN_ABUNDANCE", 0),
		"minimum natural abundance for an isotope to enter the nuclide table")
	cmd.Flags().Float64Var(&pf.minAbundanceProduct, "min-abundance-product",
		envFloat("IONTYPE_MIN_ABUNDANCE_PRODUCT", 0),
		"minimum abundance product for a candidate to stay relevant")
	cmd.Flags().Float64Var(&pf.minHalfLife, "min-half-life",
		envFloat("IONTYPE_MIN_HALF_LIFE", math.Inf(1)),
		"minimum half-life in seconds (+Inf keeps only stable isotopes)")
	cmd.Flags().BoolVar(&pf.sacrificeUniqueness, "sacrifice-isotopic-uniqueness",
		envBool("IONTYPE_SACRIFICE_ISOTOPIC_UNIQUENESS", true),
		"assert a charge state shared by isotopically different candidates")
	cmd.Flags().IntVar(&pf.maxCharge, "max-charge",
		envInt("IONTYPE_MAX_CHARGE", ranging.DefaultMaxCharge),
		"maximum charge state to consider")
}

func (pf *policyFlags) policy() ranging.Policy {
	return ranging.Policy{
		MinAbundance:                pf.minAbundance,
		MinAbundanceProduct:         pf.minAbundanceProduct,
		MinHalfLife:                 pf.minHalfLife,
		SacrificeIsotopicUniqueness: pf.sacrificeUniqueness,
		MaxCharge:                   pf.maxCharge,
	}
}

func envFloat(name string, def float64) float64 {
	if v, ok := os.LookupEnv(name); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(name string, def bool) bool {
	if v, ok := os.LookupEnv(name); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envInt(name string, def int) int {
	if v, ok := os.LookupEnv(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func newResolveCmd() *cobra.Command {
	var pf policyFlags
	var low, high float64

	cmd := &cobra.Command{
		Use:   "resolve [tokens...]",
		Short: "Resolve a composition against a mass-to-charge interval",
		Example: `  iontype resolve Cr Cr O --low 57.819 --high 61.159
  iontype resolve Fe-56 O --low 35.5 --high 36.5 --min-abundance-product 1e-4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pol := pf.policy()
			if err := pol.Validate(); err != nil {
				return err
			}
			comp, err := nuclide.Parse(args...)
			if err != nil {
				return err
			}
			tbl, err := ranging.Build(atomdata.Embedded(), pol)
			if err != nil {
				return err
			}

			rec := ion.New(comp)
			if err = rec.AddRange(nuclide.Interval{Low: low, High: high}); err != nil {
				return err
			}
			if err = rec.ApplyRanging(tbl, pol); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CANDIDATE\tCHARGE\tMASS (Da)\tABUNDANCE PRODUCT")
			for _, cand := range rec.Model.Resolution.Candidates {
				fmt.Fprintf(w, "%s\t%d\t%.5f\t%.6g\n",
					candidateName(cand), cand.ChargeState, cand.Mass, cand.AbundanceProduct)
			}
			if err = w.Flush(); err != nil {
				return err
			}
			if rec.Model.Resolution.Resolved {
				fmt.Fprintf(out, "resolved: %s (charge state %d)\n", rec.Name(), rec.ChargeState)
			} else {
				fmt.Fprintf(out, "unresolved: %s (no unique charge state)\n", rec.Name())
			}
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().Float64Var(&low, "low", 0, "interval lower bound in Da")
	cmd.Flags().Float64Var(&high, "high", 0, "interval upper bound in Da")
	_ = cmd.MarkFlagRequired("low")
	_ = cmd.MarkFlagRequired("high")
	return cmd
}

// candidateName renders a candidate as a pinned-isotope composition name.
func candidateName(cand ranging.Candidate) string {
	slots := make([]nuclide.Slot, len(cand.Nuclides))
	for i, h := range cand.Nuclides {
		slots[i] = nuclide.IsotopeSlot(h.Protons(), h.Neutrons())
	}
	comp, err := nuclide.NewComposition(slots...)
	if err != nil {
		return "?"
	}
	return ion.Name(comp, 0)
}

func newNuclidesCmd() *cobra.Command {
	var pf policyFlags

	cmd := &cobra.Command{
		Use:   "nuclides <element>",
		Short: "List the isotopes of an element eligible under the current policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			protons, ok := nuclide.ProtonNumber(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", nuclide.ErrUnknownElement, args[0])
			}
			pol := pf.policy()
			tbl, err := ranging.Build(atomdata.Embedded(), pol)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NUCLIDE\tMASS (Da)\tABUNDANCE\tHALF-LIFE")
			for _, h := range tbl.IsotopesOf(protons) {
				n, _ := tbl.Lookup(h)
				fmt.Fprintf(w, "%s\t%.6f\t%.6g\t%s\n",
					h, n.Mass, n.Abundance, halfLifeLabel(n.HalfLife))
			}
			return w.Flush()
		},
	}
	pf.register(cmd)
	return cmd
}

func halfLifeLabel(hl nuclide.HalfLife) string {
	switch hl.Class() {
	case nuclide.HalfLifeStable:
		return "stable"
	case nuclide.HalfLifeFinite:
		s, _ := hl.Seconds()
		return fmt.Sprintf("%.3g s", s)
	default:
		return "unknown"
	}
}
