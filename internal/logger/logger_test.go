package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"error":   log.ErrorLevel,
		"fatal":   log.FatalLevel,
		"verbose": log.InfoLevel,
		"":        log.InfoLevel,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseLevel(input), input)
	}
}

func TestSetOutput_RedirectsComponentLoggers(t *testing.T) {
	require.NoError(t, Configure("debug", "", false))
	t.Cleanup(func() { SetOutput(os.Stderr) })

	component := NewStyledLogger("Shell")

	var buf bytes.Buffer
	SetOutput(&buf)
	component.Debug("Dispatching command", "command", "help")
	Warn("Session data unavailable")

	assert.Contains(t, buf.String(), "Dispatching command")
	assert.Contains(t, buf.String(), "Session data unavailable")
}

func TestConfigure_LogFile(t *testing.T) {
	path := t.TempDir() + "/greanium.log"
	require.NoError(t, Configure("info", path, false))
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Info("Starting Greanium")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Starting Greanium")
}

func TestConfigure_EnvLevel(t *testing.T) {
	t.Setenv("GREANIUM_LOG_LEVEL", "error")
	require.NoError(t, Configure("", "", false))
	t.Cleanup(func() { SetOutput(os.Stderr) })

	assert.Equal(t, log.ErrorLevel, Logger.GetLevel())
}
