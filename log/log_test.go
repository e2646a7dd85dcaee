package log

import (
	"bytes"
	stdlog "log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupFile(t *testing.T) {
	defer stdlog.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "dscalc.log")
	Setup(path, false)

	Println("computed DS", 1.02)
	Debugf("not written %d", 1)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "computed DS 1.02")
	assert.NotContains(t, string(b), "not written")
}

func TestDebugf(t *testing.T) {
	defer stdlog.SetOutput(os.Stderr)

	Setup("", true)
	var buf bytes.Buffer
	stdlog.SetOutput(&buf)

	Debugf("parsed %s", "C6H10O5")
	assert.Contains(t, buf.String(), "parsed C6H10O5")
	debug = false
}
