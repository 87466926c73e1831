package main

import (
	"fmt"
	"math"

	"github.com/spectralab/mzpeaks/pkg/peak"
	"github.com/spf13/cobra"
)

var (
	mzMass   float64
	mzMz     float64
	mzCharge int32
)

var mzCmd = &cobra.Command{
	Use:   "mz",
	Short: "Convert between neutral mass and m/z",
	Long: `Derive the m/z of a species from its neutral mass and charge state, or
recover the neutral mass from an observed m/z, using the proton charge
carrier mass.`,
	RunE: runMZ,
}

func init() {
	mzCmd.Flags().Float64Var(&mzMass, "mass", math.NaN(), "Neutral mass to convert to m/z")
	mzCmd.Flags().Float64Var(&mzMz, "mz", math.NaN(), "m/z to convert to neutral mass")
	mzCmd.Flags().Int32Var(&mzCharge, "charge", 0, "Charge state (required, nonzero)")
	mzCmd.MarkFlagsMutuallyExclusive("mass", "mz")
	mzCmd.MarkFlagsOneRequired("mass", "mz")
}

func runMZ(cmd *cobra.Command, args []string) error {
	if mzCharge == 0 {
		return fmt.Errorf("charge must be nonzero")
	}

	out := cmd.OutOrStdout()
	switch {
	case !math.IsNaN(mzMass):
		fmt.Fprintf(out, "%.10g\n", peak.MassToMZ(mzMass, mzCharge))
	case !math.IsNaN(mzMz):
		fmt.Fprintf(out, "%.10g\n", peak.MZToMass(mzMz, mzCharge))
	default:
		return fmt.Errorf("either --mass or --mz is required")
	}
	return nil
}
