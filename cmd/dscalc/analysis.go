package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RoanBrand/CelluloseDS/ds"
	"github.com/RoanBrand/CelluloseDS/formula"
	"github.com/RoanBrand/CelluloseDS/results"
	"github.com/RoanBrand/CelluloseDS/sample"
	"github.com/spf13/cobra"
)

type evalFlags struct {
	method      string
	substituent string
	guess       float64
}

func (f *evalFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.method, "method", "", "DS method: carbon, substituent or tms (default from config)")
	cmd.Flags().StringVar(&f.substituent, "subst", "", "Substituent element (default from config)")
	cmd.Flags().Float64Var(&f.guess, "guess", 0, "DS assumed by the tms method")
}

func (f *evalFlags) request(a *app, cmd *cobra.Command) (ds.Request, error) {
	name := f.method
	if name == "" {
		name = a.conf.DefaultMethod
	}
	method, err := ds.ParseMethod(name)
	if err != nil {
		return ds.Request{}, err
	}

	req := ds.Request{Method: method, Substituent: f.substituent}
	if req.Substituent == "" {
		req.Substituent = a.conf.DefaultSubstituent
	}
	if cmd.Flags().Changed("guess") {
		g := f.guess
		req.DSGuess = &g
	}
	return req, nil
}

func analysisCmd(a *app) *cobra.Command {
	var flags evalFlags

	cmd := &cobra.Command{
		Use:   "analysis FORMULA",
		Short: "Enter a measured elemental analysis and compare it with a formula",
		Long: `Prompts for the measured mass percentage of every element of FORMULA.
Leave an element empty if it was not determined. The measured values are
shown next to the calculated composition, followed by the DS when the
method's element was measured.`,
		Example: "  dscalc analysis C6H9O4Cl --method substituent --subst Cl",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.engine.Parse(args[0])
			if err != nil {
				return err
			}
			calculated, err := a.engine.Ratios(args[0])
			if err != nil {
				return err
			}
			req, err := flags.request(a, cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rec, err := promptAnalysis(cmd.InOrStdin(), out, f)
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			printComparison(out, rec, calculated)

			ev, err := a.engine.Evaluate(rec, req)
			if errors.Is(err, ds.ErrMissingMeasurement) {
				return nil
			}
			if err != nil {
				return err
			}
			printDS(out, ev.DS)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

// promptAnalysis asks for the percentage of each distinct element of f. Empty
// answers leave the element undetermined.
func promptAnalysis(in io.Reader, out io.Writer, f formula.Formula) (sample.Record, error) {
	var rec sample.Record
	sc := bufio.NewScanner(in)

	fmt.Fprintln(out, "Enter your elemental analysis (in %)")
	fmt.Fprintln(out, "Leave non determined elements empty!")

	asked := make(map[string]bool)
	for _, atom := range f {
		if asked[atom.Element] {
			continue
		}
		asked[atom.Element] = true

		fmt.Fprintf(out, "%s: ", atom.Element)
		if !sc.Scan() {
			break
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(line, "%"), 64)
		if err != nil {
			return rec, fmt.Errorf("invalid percentage for %s: %q", atom.Element, line)
		}
		rec.Set(atom.Element, v)
	}

	return rec, sc.Err()
}

func printComparison(w io.Writer, rec sample.Record, calculated []sample.ElementResult) {
	fmt.Fprintln(w, "Element\tMeasured\tCalculated")
	for _, c := range calculated {
		if m, ok := rec.Percent(c.Element); ok {
			fmt.Fprintf(w, "%s\t%.3f%%\t%.3f%%\n", c.Element, m, c.Value*100)
		} else {
			fmt.Fprintf(w, "%s\t-\t%.3f%%\n", c.Element, c.Value*100)
		}
	}
}

func samplesCmd(a *app) *cobra.Command {
	var flags evalFlags

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Evaluate the latest samples of the configured data sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(a.conf.DataSources) == 0 {
				return errors.New("no data sources configured, pass --config")
			}
			req, err := flags.request(a, cmd)
			if err != nil {
				return err
			}

			sources, err := results.Sources(a.conf)
			if err != nil {
				return err
			}
			recs, err := results.Latest(sources, a.conf.NumberOfResults)
			if err != nil {
				return err
			}

			printSamples(cmd.OutOrStdout(), a.engine, recs, req)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func printSamples(w io.Writer, e *ds.Engine, recs []sample.Record, req ds.Request) {
	for _, rec := range recs {
		ev, err := e.Evaluate(rec, req)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t%v\n", rec.TimeStamp.Format("2006-01-02 15:04"), rec.SampleName, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s %.3f%%\tDS: %.3g\n",
			rec.TimeStamp.Format("2006-01-02 15:04"), rec.SampleName, ev.Measured.Element, ev.Measured.Value, ev.DS)
	}
}
