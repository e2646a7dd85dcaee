package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RoanBrand/CelluloseDS/ds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, "80", conf.HTTPServerPort)
	assert.Equal(t, 20, conf.NumberOfResults)
	assert.Equal(t, "Cl", conf.DefaultSubstituent)

	f, err := conf.Features()
	require.NoError(t, err)
	assert.Equal(t, ds.Latest, f)
}

func TestLoadConfig(t *testing.T) {
	conf, err := LoadConfig(writeConfig(t, `{
		"http_server_port": "8080",
		"version": "v2",
		"default_substituent": "X",
		"default_method": "substituent",
		"element_weights": {"X": 59.04},
		"data_sources": [
			{"type": "XML", "source": "/data/export", "instrument": 2},
			{"type": "mssql", "address": "lims", "user": "u", "password": "p", "database": "lab", "table": "EA"}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.HTTPServerPort)
	require.Len(t, conf.DataSources, 2)
	assert.Equal(t, "xml", conf.DataSources[0].Type)
	assert.Equal(t, "server=lims;user id=u;password=p;database=lab", conf.DataSources[1].ConnString())

	e, err := conf.Engine()
	require.NoError(t, err)
	assert.Equal(t, ds.V2, e.Features())

	x, err := e.Table().Lookup("X")
	require.NoError(t, err)
	assert.Equal(t, 59.04, x)
}

func TestLoadConfigInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"bad json":            `{`,
		"unknown field":       `{"colour": "red"}`,
		"bad version":         `{"version": "v7"}`,
		"bad method":          `{"default_method": "nmr"}`,
		"unknown substituent": `{"default_substituent": "X"}`,
		"bad weight":          `{"element_weights": {"X": -1}}`,
		"bad results":         `{"number_of_results": 0}`,
		"unknown source type": `{"data_sources": [{"type": "csv", "source": "a"}]}`,
		"xml without source":  `{"data_sources": [{"type": "xml"}]}`,
		"mssql without table": `{"data_sources": [{"type": "mssql", "address": "a"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
