// Package main provides the iontype command: molecular-ion charge-state
// resolution for atom-probe ranging definitions from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env policy defaults if present
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "iontype",
		Short: "Recover isotopes and charge states behind atom-probe ranging definitions",
		Long: "iontype expands an element composition against a mass-to-charge interval\n" +
			"into every isotope × charge-state combination consistent with it, then\n" +
			"decides whether a single charge state can be asserted.",
		SilenceUsage: true,
	}
	root.AddCommand(newResolveCmd(), newNuclidesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
