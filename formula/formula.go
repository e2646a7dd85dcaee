// Package formula parses condensed chemical formulas such as "C6H10O5" or
// "C6H9O4Cl1.5" and derives molar masses and mass fractions from them.
//
// Only flat formulas are understood: no parentheses, hydrates, charges or
// isotopes. Repeated elements are kept as separate atoms in parse order.
package formula

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedFormula = errors.New("malformed formula")

// Atom is one element/count pair of a formula.
type Atom struct {
	Element string
	Count   float64

	// Explicit is set when the count was written out ("O1") rather than implied ("O").
	Explicit bool
}

type Formula []Atom

// String formats f back into condensed notation.
func (f Formula) String() string {
	var sb strings.Builder
	for _, a := range f {
		sb.WriteString(a.Element)
		if a.Explicit || a.Count != 1 {
			sb.WriteString(formatCount(a.Count))
		}
	}
	return sb.String()
}

// Parser turns formula strings into Formulas. The zero value accepts fractional counts.
type Parser struct {
	IntegerCounts bool // reject counts with a decimal point
}

// Parse parses raw with the default Parser.
func Parse(raw string) (Formula, error) {
	return Parser{}.Parse(raw)
}

// Parse tokenizes raw as a sequence of [A-Z][a-z]?[0-9.]* tokens. Every byte of
// raw must belong to a token.
func (p Parser) Parse(raw string) (Formula, error) {
	var f Formula

	i := 0
	for i < len(raw) {
		start := i
		if !isUpper(raw[i]) {
			return nil, malformed(raw, i, "expected element symbol")
		}
		i++
		if i < len(raw) && isLower(raw[i]) {
			i++
		}

		atom := Atom{Element: raw[start:i], Count: 1}

		countStart := i
		for i < len(raw) && (isDigit(raw[i]) || raw[i] == '.') {
			i++
		}
		if countStart < i {
			c := raw[countStart:i]
			if p.IntegerCounts && strings.IndexByte(c, '.') >= 0 {
				return nil, malformed(raw, countStart, "fractional count "+c)
			}

			count, err := strconv.ParseFloat(c, 64)
			if err != nil {
				return nil, malformed(raw, countStart, "invalid count "+c)
			}
			atom.Count = count
			atom.Explicit = true
		}

		f = append(f, atom)
	}

	if len(f) == 0 {
		return nil, fmt.Errorf("%w: no elements in %q", ErrMalformedFormula, raw)
	}

	return f, nil
}

func malformed(raw string, offset int, msg string) error {
	return fmt.Errorf("%w: %q at offset %d: %s", ErrMalformedFormula, raw, offset, msg)
}

func formatCount(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
