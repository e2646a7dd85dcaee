package main

import (
	"fmt"
	"os"

	"github.com/RoanBrand/CelluloseDS/config"
	"github.com/RoanBrand/CelluloseDS/ds"
	"github.com/RoanBrand/CelluloseDS/internal/version"
	"github.com/RoanBrand/CelluloseDS/log"
	"github.com/spf13/cobra"
)

var (
	// Build variables set by ldflags
	buildVersion string
	buildCommit  string
	buildTime    string
)

type app struct {
	configPath  string
	calcVersion string

	conf   *config.Config
	engine *ds.Engine
}

// load reads the optional config file and builds the engine.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	conf := config.Default()
	if a.configPath != "" {
		var err error
		if conf, err = config.LoadConfig(a.configPath); err != nil {
			return err
		}
		log.Setup(conf.LogFile, conf.DebugMode)
	}
	if cmd.Flags().Changed("calc-version") {
		conf.Version = a.calcVersion
	}

	e, err := conf.Engine()
	if err != nil {
		return err
	}

	a.conf = conf
	a.engine = e
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		rawFormula  string
		carbonRatio float64
		substituent string
	)

	rootCmd := &cobra.Command{
		Use:   "dscalc",
		Short: "Degree of substitution calculator for cellulose derivatives",
		Long: `dscalc computes molar masses, elemental compositions and degrees of
substitution (DS) of substituted cellulose from elemental analysis data.`,
		Version:           version.GetVersion(buildVersion, buildCommit),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ran := false
			if cmd.Flags().Changed("formula") {
				if err := printFormula(cmd.OutOrStdout(), a.engine, rawFormula); err != nil {
					return err
				}
				ran = true
			}
			if cmd.Flags().Changed("carbon") && cmd.Flags().Changed("subst") {
				d, err := a.engine.FromCarbonRatio(substituent, carbonRatio)
				if err != nil {
					return err
				}
				printDS(cmd.OutOrStdout(), d)
				ran = true
			}
			if !ran {
				return cmd.Help()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&a.calcVersion, "calc-version", "latest", "Calculator revision (v1, v2, v3, latest)")

	rootCmd.Flags().StringVarP(&rawFormula, "formula", "e", "", "Displays elemental composition of the formula")
	rootCmd.Flags().Float64VarP(&carbonRatio, "carbon", "c", 0, "Carbon ratio in the elemental analysis (mass fraction)")
	rootCmd.Flags().StringVarP(&substituent, "subst", "m", "", "Type of substituent")

	rootCmd.AddCommand(versionCmd(a))
	rootCmd.AddCommand(formulaCmd(a))
	rootCmd.AddCommand(dsCmd(a))
	rootCmd.AddCommand(mwCmd(a))
	rootCmd.AddCommand(compositionCmd(a))
	rootCmd.AddCommand(analysisCmd(a))
	rootCmd.AddCommand(samplesCmd(a))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetDetailedVersion(buildVersion, buildCommit, buildTime, a.engine.Features().String()))
		},
	}
}
