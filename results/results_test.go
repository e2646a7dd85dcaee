package results

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/RoanBrand/CelluloseDS/config"
	"github.com/RoanBrand/CelluloseDS/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	recs  []sample.Record
	err   error
	calls int
}

func (f *fakeSource) GetResults(n int) ([]sample.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.recs) > n {
		return f.recs[:n], nil
	}
	return f.recs, nil
}

func (f *fakeSource) String() string { return fmt.Sprintf("fake(%d)", len(f.recs)) }

func rec(name string, day int) sample.Record {
	return sample.Record{SampleName: name, TimeStamp: time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)}
}

func TestLatestMerges(t *testing.T) {
	a := &fakeSource{recs: []sample.Record{rec("a3", 3), rec("a1", 1)}}
	b := &fakeSource{recs: []sample.Record{rec("b4", 4), rec("b2", 2)}}

	got, err := Latest([]Getter{a, b}, 3)
	require.NoError(t, err)

	var names []string
	for _, r := range got {
		names = append(names, r.SampleName)
	}
	assert.Equal(t, []string{"b4", "a3", "b2"}, names)
}

func TestLatestSkipsFailingSource(t *testing.T) {
	a := &fakeSource{recs: []sample.Record{rec("a1", 1)}}
	b := &fakeSource{err: errors.New("db offline")}

	got, err := Latest([]Getter{a, b}, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = Latest([]Getter{b}, 5)
	assert.Error(t, err)
}

func TestLatestNoSources(t *testing.T) {
	got, err := Latest(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLatestNegativeLimit(t *testing.T) {
	a := &fakeSource{recs: []sample.Record{rec("a3", 3), rec("a1", 1)}}

	got, err := Latest([]Getter{a}, -2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCache(t *testing.T) {
	a := &fakeSource{recs: []sample.Record{rec("a1", 1)}}
	c := NewCache([]Getter{a}, 5, time.Hour)

	for i := 0; i < 3; i++ {
		got, err := c.Get()
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
	assert.Equal(t, 1, a.calls)

	c = NewCache([]Getter{a}, 5, 0)
	_, _ = c.Get()
	_, _ = c.Get()
	assert.Equal(t, 3, a.calls)
}

func TestSources(t *testing.T) {
	conf := config.Default()
	conf.DataSources = []config.DataSource{
		{Type: "xml", Source: "/data/export", Instrument: 3},
		{Type: "mdb", Source: "Provider=x;Data Source=ea.mdb;"},
		{Type: "mssql", Address: "lims", Table: "EA"},
	}

	got, err := Sources(conf)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "xml:/data/export", fmt.Sprint(got[0]))
	assert.Equal(t, "adodb:ElementalAnalysis", fmt.Sprint(got[1]))
	assert.Equal(t, "mssql:EA", fmt.Sprint(got[2]))

	conf.DataSources = []config.DataSource{{Type: "mssql", Address: "lims", Table: "bad table"}}
	_, err = Sources(conf)
	assert.Error(t, err)
}
