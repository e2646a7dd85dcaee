// Package ds computes the degree of substitution (DS) of cellulose derivatives
// from elemental analysis data.
//
// The DS is the average number of hydroxyl groups of an anhydroglucose unit
// (AGU, C6H10O5) replaced by a substituent, nominally between 0 and 3. Results
// are never clamped to that range.
//
// The functions in this file work on plain weights and fractions. Engine binds
// them to an element table so substituents can be given by symbol.
package ds

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrComputation    = errors.New("computation error")
)

// CarbonRatio returns the DS of a single substituent type of molar weight msub
// from the measured carbon mass fraction c.
func CarbonRatio(msub, c float64) (float64, error) {
	if err := finite("carbon ratio", msub, c); err != nil {
		return 0, err
	}

	// coefficients combine the AGU composition with one substitution site
	return divide("carbon ratio",
		-3*(54047*c-24022),
		(1000*msub-17007)*c)
}

// SubstituentRatio returns the DS from the measured mass fraction x of the
// substituent, given the weights of carbon, hydrogen, oxygen and the substituent.
func SubstituentRatio(mc, mh, mo, msub, x float64) (float64, error) {
	if err := finite("substituent ratio", mc, mh, mo, msub, x); err != nil {
		return 0, err
	}

	return divide("substituent ratio",
		x*(6*mc+10*mh+5*mo),
		msub+x*(mh+mo-msub))
}

// TMS returns the DS of a trimethylsilylated sample from its silicon mass
// fraction mpc. d is the DS the structure is assumed to carry for the
// substituent of weight mx.
func TMS(mc, mh, mo, msi, mx, d, mpc float64) (float64, error) {
	if err := finite("tms", mc, mh, mo, msi, mx, d, mpc); err != nil {
		return 0, err
	}

	return divide("tms",
		mpc*(mo*(5-d)+mx*d+6*mc+mh*(10-d)),
		msi-mpc*(3*mc+9*mh+msi))
}

func divide(method string, num, den float64) (float64, error) {
	if den == 0 {
		return 0, fmt.Errorf("%s: %w", method, ErrDivisionByZero)
	}

	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("%s: %w: %v / %v", method, ErrComputation, num, den)
	}
	return r, nil
}

func finite(method string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %w: non-finite input %v", method, ErrComputation, v)
		}
	}
	return nil
}
