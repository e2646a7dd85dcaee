package main

import (
	"fmt"
	"strconv"

	"github.com/RoanBrand/CelluloseDS/ds"
	"github.com/spf13/cobra"
)

func formulaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "formula FORMULA",
		Short:   "Show molar mass and elemental composition of a formula",
		Example: "  dscalc formula C6H10O5\n  dscalc formula C6H8.5O3.5Cl1.5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFormula(cmd.OutOrStdout(), a.engine, args[0])
		},
	}
}

func dsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ds",
		Short: "Compute the degree of substitution from a measured mass fraction",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "carbon SUBSTITUENT CARBON_FRACTION",
		Short:   "DS from the carbon mass fraction",
		Example: "  dscalc ds carbon Cl 0.45",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseFloat(args[1], "carbon fraction")
			if err != nil {
				return err
			}
			d, err := a.engine.FromCarbonRatio(args[0], c)
			if err != nil {
				return err
			}
			printDS(cmd.OutOrStdout(), d)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "substituent SUBSTITUENT SUBSTITUENT_FRACTION",
		Short:   "DS from the mass fraction of the substituent element",
		Example: "  dscalc ds substituent Cl 0.2",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloat(args[1], "substituent fraction")
			if err != nil {
				return err
			}
			d, err := a.engine.FromSubstituentRatio(args[0], x)
			if err != nil {
				return err
			}
			printDS(cmd.OutOrStdout(), d)
			return nil
		},
	})

	var guess float64
	tms := &cobra.Command{
		Use:     "tms SUBSTITUENT SILICON_FRACTION",
		Short:   "DS of a trimethylsilyl derivative from the silicon mass fraction",
		Example: "  dscalc ds tms Si 0.1\n  dscalc ds tms Cl 0.12 --guess 1",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			si, err := parseFloat(args[1], "silicon fraction")
			if err != nil {
				return err
			}
			d, err := a.engine.TMS(args[0], guess, si)
			if err != nil {
				return err
			}
			printDS(cmd.OutOrStdout(), d)
			return nil
		},
	}
	tms.Flags().Float64Var(&guess, "guess", 0, "DS assumed for the substituent")
	cmd.AddCommand(tms)

	return cmd
}

func mwCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "mw SUBSTITUENT DS",
		Short:   "Mean molar mass of a repeat unit at a given DS",
		Example: "  dscalc mw Cl 1.5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseFloat(args[1], "DS")
			if err != nil {
				return err
			}
			mw, err := a.engine.MolarMassByDS(args[0], d)
			if err != nil {
				return err
			}
			printMolarMass(cmd.OutOrStdout(), mw)
			return nil
		},
	}
}

func compositionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "composition SUBSTITUENT DS",
		Short:   "Theoretical elemental composition at a given DS",
		Example: "  dscalc composition Cl 1.5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseFloat(args[1], "DS")
			if err != nil {
				return err
			}
			ratios, err := a.engine.CompositionByDS(d, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ds.CompositionFormula(d, args[0]))
			printRatios(out, ratios)
			return nil
		},
	}
}

func parseFloat(s, what string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return v, nil
}
