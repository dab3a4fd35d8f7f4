package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", "json", zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible")
	require.NoError(t, logger.Sync())

	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewUnknownLevelKeepsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("loud", "dev", zapcore.AddSync(&buf))
	require.NoError(t, err)

	// Уровень по умолчанию для development-конфигурации - debug
	logger.Debug("debug line")
	require.NoError(t, logger.Sync())
	assert.Contains(t, buf.String(), "debug line")
}

func TestNewWithOutputKeepsCaller(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", "json", zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Info("with caller")
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "with caller", entry["msg"])
	assert.Contains(t, entry["caller"], "logging_test.go")
}

func TestNewDevWithOutputKeepsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", "dev", zapcore.AddSync(&buf))
	require.NoError(t, err)

	// В development-конфигурации стек прикладывается начиная с warn
	logger.Warn("stack")
	require.NoError(t, logger.Sync())
	assert.Contains(t, buf.String(), "TestNewDevWithOutputKeepsStacktrace")
}
