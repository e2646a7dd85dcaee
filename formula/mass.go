package formula

import (
	"errors"
	"fmt"

	"github.com/RoanBrand/CelluloseDS/elements"
	"github.com/RoanBrand/CelluloseDS/sample"
)

// ErrEmptyFormula is returned when a formula has no atoms, or no mass, so
// fractions of it are undefined.
var ErrEmptyFormula = errors.New("empty formula")

// Calculator derives molar masses and mass fractions using one element table.
type Calculator struct {
	table *elements.Table
}

func NewCalculator(table *elements.Table) *Calculator {
	return &Calculator{table: table}
}

func (c *Calculator) Table() *elements.Table {
	return c.table
}

// MolarMass sums atomic weight times count over all atoms of f.
func (c *Calculator) MolarMass(f Formula) (float64, error) {
	if len(f) == 0 {
		return 0, ErrEmptyFormula
	}

	total := 0.0
	for _, a := range f {
		w, err := c.table.Lookup(a.Element)
		if err != nil {
			return 0, err
		}
		total += w * a.Count
	}

	return total, nil
}

// Ratios returns the mass fraction of every atom of f, one entry per atom and
// in the same order.
func (c *Calculator) Ratios(f Formula) ([]sample.ElementResult, error) {
	total, err := c.MolarMass(f)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: %s has zero molar mass", ErrEmptyFormula, f)
	}

	ratios := make([]sample.ElementResult, 0, len(f))
	for _, a := range f {
		// lookup can't fail here, MolarMass already resolved every symbol
		w, _ := c.table.Lookup(a.Element)
		ratios = append(ratios, sample.ElementResult{Element: a.Element, Value: w * a.Count / total})
	}

	return ratios, nil
}

// MolarMassOf parses raw and returns its molar mass.
func (c *Calculator) MolarMassOf(raw string) (float64, error) {
	f, err := Parse(raw)
	if err != nil {
		return 0, err
	}
	return c.MolarMass(f)
}

// RatiosOf parses raw and returns its element ratios.
func (c *Calculator) RatiosOf(raw string) ([]sample.ElementResult, error) {
	f, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return c.Ratios(f)
}
