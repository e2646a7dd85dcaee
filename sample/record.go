package sample

import "time"

// Record is one elemental analysis of a sample. Results hold mass percentages
// in the order the instrument reported them.
type Record struct {
	SampleName string          `json:"sample_name"`
	Operator   string          `json:"operator,omitempty"`
	TimeStamp  time.Time       `json:"time_stamp"`
	Results    []ElementResult `json:"results,omitempty"`

	Instrument int `json:"instrument,omitempty"` // analyzer the sample was measured on
}

// ElementResult pairs an element symbol with a value. For measured records the
// value is a mass percentage, for computed compositions a mass fraction.
type ElementResult struct {
	Element string  `json:"element"`
	Value   float64 `json:"value"`
}

// Percent returns the first measured percentage for el. ok is false when the
// element was not determined.
func (r *Record) Percent(el string) (value float64, ok bool) {
	for _, res := range r.Results {
		if res.Element == el {
			return res.Value, true
		}
	}
	return 0, false
}

// Fraction is Percent scaled to a mass fraction.
func (r *Record) Fraction(el string) (float64, bool) {
	p, ok := r.Percent(el)
	return p / 100, ok
}

// Set replaces the value of el, appending it if not yet present.
func (r *Record) Set(el string, percent float64) {
	for i := range r.Results {
		if r.Results[i].Element == el {
			r.Results[i].Value = percent
			return
		}
	}
	r.Results = append(r.Results, ElementResult{Element: el, Value: percent})
}

// Sum adds up all values.
func Sum(results []ElementResult) float64 {
	total := 0.0
	for _, r := range results {
		total += r.Value
	}
	return total
}
