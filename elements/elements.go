package elements

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownElement = errors.New("unknown element")

// Standard atomic weights (g/mol) of the elements found in cellulose derivatives.
var defaultWeights = map[string]float64{
	"H":  1.0079,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"Cl": 35.453,
	"Br": 79.904,
	"Si": 28.086,
}

var defaultTable = mustNew(defaultWeights)

// Table maps element symbols to atomic weights. It is never modified after construction.
type Table struct {
	weights map[string]float64
}

// Default returns the process wide table of standard atomic weights.
func Default() *Table {
	return defaultTable
}

// New builds a table from symbol -> weight pairs. The map is copied.
func New(weights map[string]float64) (*Table, error) {
	t := &Table{weights: make(map[string]float64, len(weights))}
	for sym, w := range weights {
		if !ValidSymbol(sym) {
			return nil, fmt.Errorf("invalid element symbol %q", sym)
		}
		if !(w > 0) {
			return nil, fmt.Errorf("atomic weight of %s must be positive, got %v", sym, w)
		}
		t.weights[sym] = w
	}

	return t, nil
}

func mustNew(weights map[string]float64) *Table {
	t, err := New(weights)
	if err != nil {
		panic(err)
	}
	return t
}

// With returns a new table holding the receiver's weights replaced or extended by overrides.
func (t *Table) With(overrides map[string]float64) (*Table, error) {
	if len(overrides) == 0 {
		return t, nil
	}

	merged := make(map[string]float64, len(t.weights)+len(overrides))
	for sym, w := range t.weights {
		merged[sym] = w
	}
	for sym, w := range overrides {
		merged[sym] = w
	}

	return New(merged)
}

func (t *Table) Lookup(symbol string) (float64, error) {
	w, ok := t.weights[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}
	return w, nil
}

func (t *Table) Has(symbol string) bool {
	_, ok := t.weights[symbol]
	return ok
}

// Symbols returns all symbols in the table, sorted.
func (t *Table) Symbols() []string {
	syms := make([]string, 0, len(t.weights))
	for sym := range t.weights {
		syms = append(syms, sym)
	}

	sort.Strings(syms)
	return syms
}

// ValidSymbol reports whether s has the shape of an element symbol: one uppercase
// letter optionally followed by one lowercase letter.
func ValidSymbol(s string) bool {
	switch len(s) {
	case 1:
		return isUpper(s[0])
	case 2:
		return isUpper(s[0]) && isLower(s[1])
	}
	return false
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
