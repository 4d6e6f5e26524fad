package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return buf
}

func TestDebug_VerboseDisabled(t *testing.T) {
	buf := setup(t)
	SetVerbose(false)

	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())
}

func TestDebug_VerboseEnabled(t *testing.T) {
	buf := setup(t)
	SetVerbose(true)

	Debug("visible %d", 2)
	assert.Equal(t, "[DEBUG] visible 2\n", buf.String())
}

func TestInfo_AlwaysPrinted(t *testing.T) {
	buf := setup(t)
	SetVerbose(false)

	Info("hello %s", "world")
	assert.Equal(t, "[INFO] hello world\n", buf.String())
}

func TestWarnAndError(t *testing.T) {
	buf := setup(t)

	Warn("w")
	Error("e")
	assert.Contains(t, buf.String(), "[WARN] w\n")
	assert.Contains(t, buf.String(), "[ERROR] e\n")
}

func TestSection_OnlyWhenVerbose(t *testing.T) {
	buf := setup(t)

	Section("Scan")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Section("Scan")
	assert.Contains(t, buf.String(), "=== Scan ===")
}

func TestIsVerbose(t *testing.T) {
	setup(t)

	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}
