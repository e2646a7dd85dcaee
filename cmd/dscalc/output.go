package main

import (
	"fmt"
	"io"

	"github.com/RoanBrand/CelluloseDS/ds"
	"github.com/RoanBrand/CelluloseDS/sample"
)

func printRatios(w io.Writer, ratios []sample.ElementResult) {
	for _, r := range ratios {
		fmt.Fprintf(w, "%s\t%.3f%%\n", r.Element, r.Value*100)
	}
}

func printDS(w io.Writer, d float64) {
	fmt.Fprintf(w, "DS: %.3g\n", d)
}

func printMolarMass(w io.Writer, mw float64) {
	fmt.Fprintf(w, "MW: %.5g g/mol\n", mw)
}

func printFormula(w io.Writer, e *ds.Engine, raw string) error {
	f, err := e.Parse(raw)
	if err != nil {
		return err
	}
	mw, err := e.Calculator().MolarMass(f)
	if err != nil {
		return err
	}
	ratios, err := e.Calculator().Ratios(f)
	if err != nil {
		return err
	}

	printMolarMass(w, mw)
	printRatios(w, ratios)
	return nil
}
