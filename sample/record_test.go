package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPercent(t *testing.T) {
	r := Record{
		SampleName: "CA-12",
		Results: []ElementResult{
			{Element: "C", Value: 48.2},
			{Element: "H", Value: 5.6},
			{Element: "C", Value: 99},
		},
	}

	c, ok := r.Percent("C")
	assert.True(t, ok)
	assert.Equal(t, 48.2, c)

	f, ok := r.Fraction("H")
	assert.True(t, ok)
	assert.InDelta(t, 0.056, f, 1e-12)

	_, ok = r.Percent("Cl")
	assert.False(t, ok)
	_, ok = r.Fraction("Cl")
	assert.False(t, ok)
}

func TestRecordSet(t *testing.T) {
	var r Record
	r.Set("C", 40)
	r.Set("H", 6)
	r.Set("C", 41)

	assert.Equal(t, []ElementResult{{"C", 41}, {"H", 6}}, r.Results)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.InDelta(t, 1.0, Sum([]ElementResult{{"C", 0.25}, {"O", 0.75}}), 1e-15)
}
