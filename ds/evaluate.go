package ds

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RoanBrand/CelluloseDS/sample"
)

var (
	ErrUnknownMethod      = errors.New("unknown DS method")
	ErrMissingMeasurement = errors.New("missing measurement")
)

// Method names the measurement a DS is derived from.
type Method string

const (
	Carbon      Method = "carbon"      // carbon mass fraction
	Substituent Method = "substituent" // mass fraction of the substituent element
	Silicon     Method = "tms"         // silicon mass fraction of a TMS derivative
)

func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case Carbon, Substituent, Silicon:
		return m, nil
	case "c":
		return Carbon, nil
	case "si", "silicon":
		return Silicon, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMethod, s)
}

// Element returns the element whose measured fraction the method consumes.
func (m Method) Element(substituent string) string {
	switch m {
	case Carbon:
		return "C"
	case Silicon:
		return "Si"
	}
	return substituent
}

// Compute applies method to a measured mass fraction. guess is only used by the TMS method.
func (e *Engine) Compute(method Method, substituent string, fraction, guess float64) (float64, error) {
	switch method {
	case Carbon:
		return e.FromCarbonRatio(substituent, fraction)
	case Substituent:
		return e.FromSubstituentRatio(substituent, fraction)
	case Silicon:
		return e.TMS(substituent, guess, fraction)
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMethod, method)
}

type Request struct {
	Method      Method
	Substituent string
	DSGuess     *float64 // TMS only, 0 when nil
}

// Evaluation is the DS found for one measured sample.
type Evaluation struct {
	SampleName  string                 `json:"sample_name"`
	Method      Method                 `json:"method"`
	Substituent string                 `json:"substituent"`
	Measured    sample.ElementResult   `json:"measured"` // percentage the DS was derived from
	DS          float64                `json:"ds"`
	MolarMass   float64                `json:"molar_mass,omitempty"`
	Composition []sample.ElementResult `json:"composition,omitempty"` // theoretical, at DS
}

// Evaluate derives the DS of rec with the requested method. With forward
// methods enabled the theoretical molar mass and composition at that DS are
// filled in too. Composition stays empty for a DS outside [0, 5], which has no
// formula.
func (e *Engine) Evaluate(rec sample.Record, req Request) (Evaluation, error) {
	ev := Evaluation{
		SampleName:  rec.SampleName,
		Method:      req.Method,
		Substituent: req.Substituent,
	}

	el := req.Method.Element(req.Substituent)
	pct, ok := rec.Percent(el)
	if !ok {
		return ev, fmt.Errorf("%w: sample %q has no %s result", ErrMissingMeasurement, rec.SampleName, el)
	}
	ev.Measured = sample.ElementResult{Element: el, Value: pct}

	guess := 0.0
	if req.DSGuess != nil {
		guess = *req.DSGuess
	}

	var err error
	ev.DS, err = e.Compute(req.Method, req.Substituent, pct/100, guess)
	if err != nil {
		return ev, fmt.Errorf("sample %q: %w", rec.SampleName, err)
	}

	if !e.features.Has(ForwardMethods) {
		return ev, nil
	}

	if ev.MolarMass, err = e.MolarMassByDS(req.Substituent, ev.DS); err != nil {
		return ev, fmt.Errorf("sample %q: %w", rec.SampleName, err)
	}
	if ev.DS < 0 || ev.DS > 5 {
		return ev, nil
	}
	if ev.Composition, err = e.CompositionByDS(ev.DS, req.Substituent); err != nil {
		return ev, fmt.Errorf("sample %q: %w", rec.SampleName, err)
	}

	return ev, nil
}
