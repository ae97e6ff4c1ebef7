package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Config{Level: "warn", Format: "json"})
	require.NoError(t, err)

	l = Component(l, "generate")
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"component":"generate"`)
}

func TestNew_ConsoleDefaults(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Config{})
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Msg("ready")
	assert.Contains(t, buf.String(), "ready")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, Config{Level: "loud", Format: "json"}.Validate())
	assert.Error(t, Config{Level: "info", Format: "xml"}.Validate())
	assert.NoError(t, Config{Level: "DEBUG", Format: "JSON"}.Validate())
}
