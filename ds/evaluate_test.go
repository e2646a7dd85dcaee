package ds

import (
	"errors"
	"testing"

	"github.com/RoanBrand/CelluloseDS/elements"
	"github.com/RoanBrand/CelluloseDS/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]Method{
		"carbon":      Carbon,
		"C":           Carbon,
		"Substituent": Substituent,
		"tms":         Silicon,
		" si ":        Silicon,
	} {
		got, err := ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMethod("nmr")
	assert.True(t, errors.Is(err, ErrUnknownMethod))
}

func TestMethodElement(t *testing.T) {
	assert.Equal(t, "C", Carbon.Element("Cl"))
	assert.Equal(t, "Si", Silicon.Element("Cl"))
	assert.Equal(t, "Br", Substituent.Element("Br"))
}

func TestEvaluate(t *testing.T) {
	e := latest()
	rec := sample.Record{
		SampleName: "CDA-7",
		Results: []sample.ElementResult{
			{Element: "C", Value: 45},
			{Element: "H", Value: 5.2},
			{Element: "Cl", Value: 20},
		},
	}

	t.Run("carbon", func(t *testing.T) {
		ev, err := e.Evaluate(rec, Request{Method: Carbon, Substituent: "Cl"})
		require.NoError(t, err)

		want, _ := e.FromCarbonRatio("Cl", 0.45)
		assert.Equal(t, "CDA-7", ev.SampleName)
		assert.Equal(t, sample.ElementResult{Element: "C", Value: 45}, ev.Measured)
		assert.InDelta(t, want, ev.DS, 1e-15)
		// negative DS: molar mass but no composition
		assert.NotZero(t, ev.MolarMass)
		assert.Empty(t, ev.Composition)
	})

	t.Run("substituent", func(t *testing.T) {
		ev, err := e.Evaluate(rec, Request{Method: Substituent, Substituent: "Cl"})
		require.NoError(t, err)

		assert.InDelta(t, 1.0209112391535264, ev.DS, 1e-12)
		mw, _ := e.MolarMassByDS("Cl", ev.DS)
		assert.Equal(t, mw, ev.MolarMass)
		require.Len(t, ev.Composition, 4)
		assert.InDelta(t, 0.2, ev.Composition[3].Value, 1e-9)
	})

	t.Run("tms missing silicon", func(t *testing.T) {
		_, err := e.Evaluate(rec, Request{Method: Silicon, Substituent: "Si"})
		assert.True(t, errors.Is(err, ErrMissingMeasurement))
	})

	t.Run("tms with guess", func(t *testing.T) {
		r := rec
		r.Results = []sample.ElementResult{{Element: "Si", Value: 12}}
		guess := 1.0

		ev, err := e.Evaluate(r, Request{Method: Silicon, Substituent: "Cl", DSGuess: &guess})
		require.NoError(t, err)
		assert.InDelta(t, 1.1226296920487955, ev.DS, 1e-12)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := e.Evaluate(rec, Request{Method: "nmr", Substituent: "Cl"})
		assert.True(t, errors.Is(err, ErrMissingMeasurement) || errors.Is(err, ErrUnknownMethod))
	})
}

func TestEvaluateV1(t *testing.T) {
	e := New(elements.Default(), V1)
	rec := sample.Record{Results: []sample.ElementResult{{Element: "C", Value: 45}}}

	ev, err := e.Evaluate(rec, Request{Method: Carbon, Substituent: "Cl"})
	require.NoError(t, err)
	assert.Zero(t, ev.MolarMass)
	assert.Nil(t, ev.Composition)
}
