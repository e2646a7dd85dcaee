package elements

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLookup(t *testing.T) {
	tests := []struct {
		symbol string
		want   float64
	}{
		{"H", 1.0079},
		{"C", 12.011},
		{"N", 14.007},
		{"O", 15.999},
		{"Cl", 35.453},
		{"Br", 79.904},
		{"Si", 28.086},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, err := Default().Lookup(tt.symbol)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, sym := range []string{"Xx", "X", "", "cl", "Fe"} {
		_, err := Default().Lookup(sym)
		assert.True(t, errors.Is(err, ErrUnknownElement), "symbol %q: %v", sym, err)
	}
}

func TestDefaultSymbols(t *testing.T) {
	assert.Equal(t, []string{"Br", "C", "Cl", "H", "N", "O", "Si"}, Default().Symbols())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(map[string]float64{"c": 12})
	assert.Error(t, err)

	_, err = New(map[string]float64{"Abc": 12})
	assert.Error(t, err)

	_, err = New(map[string]float64{"C": 0})
	assert.Error(t, err)

	_, err = New(map[string]float64{"C": -1})
	assert.Error(t, err)
}

func TestNewCopiesWeights(t *testing.T) {
	w := map[string]float64{"C": 12}
	tbl, err := New(w)
	require.NoError(t, err)

	w["C"] = 100
	got, err := tbl.Lookup("C")
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)
}

func TestWith(t *testing.T) {
	tbl, err := Default().With(map[string]float64{"X": 59.04, "C": 12})
	require.NoError(t, err)

	x, err := tbl.Lookup("X")
	require.NoError(t, err)
	assert.Equal(t, 59.04, x)

	c, err := tbl.Lookup("C")
	require.NoError(t, err)
	assert.Equal(t, 12.0, c)

	// default table untouched
	assert.False(t, Default().Has("X"))
	c, _ = Default().Lookup("C")
	assert.Equal(t, 12.011, c)

	same, err := Default().With(nil)
	require.NoError(t, err)
	assert.Same(t, Default(), same)
}

func TestValidSymbol(t *testing.T) {
	assert.True(t, ValidSymbol("C"))
	assert.True(t, ValidSymbol("Si"))
	assert.False(t, ValidSymbol(""))
	assert.False(t, ValidSymbol("si"))
	assert.False(t, ValidSymbol("SI"))
	assert.False(t, ValidSymbol("Sil"))
	assert.False(t, ValidSymbol("1"))
}
