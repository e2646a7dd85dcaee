package ds

import (
	"fmt"
	"math"
	"strconv"

	"github.com/RoanBrand/CelluloseDS/elements"
	"github.com/RoanBrand/CelluloseDS/formula"
	"github.com/RoanBrand/CelluloseDS/sample"
)

const (
	// AGU is the anhydroglucose unit, the repeating unit of cellulose.
	AGU      = "C6H10O5"
	hydroxyl = "OH"
)

// Engine evaluates the DS calculations against one element table. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	table    *elements.Table
	calc     *formula.Calculator
	parser   formula.Parser
	features Features
}

func New(table *elements.Table, features Features) *Engine {
	return &Engine{
		table:    table,
		calc:     formula.NewCalculator(table),
		parser:   formula.Parser{IntegerCounts: !features.Has(FractionalCounts)},
		features: features,
	}
}

func (e *Engine) Features() Features {
	return e.features
}

func (e *Engine) Table() *elements.Table {
	return e.table
}

// Calculator returns the mass calculator over the engine's table, for
// formulas already parsed with Parse.
func (e *Engine) Calculator() *formula.Calculator {
	return e.calc
}

// Parse parses raw, honouring the FractionalCounts feature.
func (e *Engine) Parse(raw string) (formula.Formula, error) {
	return e.parser.Parse(raw)
}

func (e *Engine) MolarMass(raw string) (float64, error) {
	f, err := e.Parse(raw)
	if err != nil {
		return 0, err
	}
	return e.calc.MolarMass(f)
}

func (e *Engine) Ratios(raw string) ([]sample.ElementResult, error) {
	f, err := e.Parse(raw)
	if err != nil {
		return nil, err
	}
	return e.calc.Ratios(f)
}

// FromCarbonRatio returns the DS from the measured carbon mass fraction c.
func (e *Engine) FromCarbonRatio(substituent string, c float64) (float64, error) {
	if err := e.require(CarbonMethod); err != nil {
		return 0, err
	}

	msub, err := e.table.Lookup(substituent)
	if err != nil {
		return 0, err
	}

	return CarbonRatio(msub, c)
}

// FromSubstituentRatio returns the DS from the measured mass fraction x of the substituent.
func (e *Engine) FromSubstituentRatio(substituent string, x float64) (float64, error) {
	if err := e.require(SubstituentMethod); err != nil {
		return 0, err
	}

	w, err := e.weights("C", "H", "O", substituent)
	if err != nil {
		return 0, err
	}

	return SubstituentRatio(w[0], w[1], w[2], w[3], x)
}

// TMS returns the DS of a trimethylsilyl derivative from its silicon mass fraction.
func (e *Engine) TMS(substituent string, dsGuess, siliconFraction float64) (float64, error) {
	if err := e.require(TMSMethod); err != nil {
		return 0, err
	}

	w, err := e.weights("C", "H", "O", "Si", substituent)
	if err != nil {
		return 0, err
	}

	return TMS(w[0], w[1], w[2], w[3], w[4], dsGuess, siliconFraction)
}

// MolarMassByDS returns the mean molar mass of a repeat unit at the given DS,
// mixing unsubstituted and substituted AGUs linearly.
func (e *Engine) MolarMassByDS(substituent string, ds float64) (float64, error) {
	if err := e.require(ForwardMethods); err != nil {
		return 0, err
	}
	if err := finite("molar mass by DS", ds); err != nil {
		return 0, err
	}

	msub, err := e.table.Lookup(substituent)
	if err != nil {
		return 0, err
	}
	agu, err := e.MolarMass(AGU)
	if err != nil {
		return 0, err
	}
	oh, err := e.MolarMass(hydroxyl)
	if err != nil {
		return 0, err
	}

	aguSubst := agu + msub - oh
	mw := (1-ds)*agu + ds*aguSubst
	if math.IsNaN(mw) || math.IsInf(mw, 0) {
		return 0, fmt.Errorf("molar mass by DS: %w", ErrComputation)
	}

	return mw, nil
}

// CompositionFormula returns the formula of an AGU carrying ds substituents,
// "C6H{10-ds}O{5-ds}{substituent}{ds}". The substituent is left out at DS 0.
func CompositionFormula(ds float64, substituent string) string {
	raw := "C6H" + formatCount(10-ds) + "O" + formatCount(5-ds)
	if ds != 0 {
		raw += substituent + formatCount(ds)
	}
	return raw
}

// CompositionByDS returns the theoretical element mass fractions at the given DS.
func (e *Engine) CompositionByDS(ds float64, substituent string) ([]sample.ElementResult, error) {
	if err := e.require(ForwardMethods); err != nil {
		return nil, err
	}
	if err := finite("composition by DS", ds); err != nil {
		return nil, err
	}
	// a symbol with a trailing count would merge with the DS count
	if _, err := e.table.Lookup(substituent); err != nil {
		return nil, err
	}

	ratios, err := e.Ratios(CompositionFormula(ds, substituent))
	if err != nil {
		return nil, fmt.Errorf("composition at DS %v: %w", ds, err)
	}
	return ratios, nil
}

func (e *Engine) require(f Features) error {
	if !e.features.Has(f) {
		return fmt.Errorf("%w: %s", ErrFeatureDisabled, f)
	}
	return nil
}

func (e *Engine) weights(symbols ...string) ([]float64, error) {
	w := make([]float64, len(symbols))
	for i, sym := range symbols {
		var err error
		if w[i], err = e.table.Lookup(sym); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func formatCount(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
