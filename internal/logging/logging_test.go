package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceFiltersByLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr := NewTrace(zap.New(core).Sugar(), tracing.LevelInfo)

	tr.Debugf("hidden %d", 1)
	tr.Infof("shown %d", 2)
	tr.Errorf("shown %d", 3)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "shown 2", logs.All()[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)

	tr.SetTraceLevel(tracing.LevelDebug)
	assert.Equal(t, tracing.LevelDebug, tr.GetTraceLevel())
	tr.Debugf("now shown")
	assert.Equal(t, 3, logs.Len())
}

func TestTraceP(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr := NewTrace(zap.New(core).Sugar(), tracing.LevelInfo)
	tr.P("table", "es").Infof("built")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "es", logs.All()[0].ContextMap()["table"])
}

func TestSelectorNamesTracers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sel := NewSelector(zap.New(core).Sugar(), tracing.LevelInfo)
	sel.Select("braille").Infof("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "braille", logs.All()[0].LoggerName)
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTrace(zap.NewNop().Sugar(), tracing.LevelInfo)
	tr.SetOutput(&buf)
	tr.Infof("to buffer")
	assert.Contains(t, buf.String(), "to buffer")
}

func TestInitializeRoutesLibraryTracing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Initialize(Options{Level: "debug", JSON: true, Output: &buf}))
	defer tracing.SetTraceSelector(nil)
	defer func() { Logger = zap.NewNop().Sugar() }()

	tracing.Select("braille").Infof("reverse table: %d cells", 63)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "reverse table: 63 cells", entry["msg"])
	assert.Equal(t, "braille", entry["logger"])
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Initialize(Options{Level: "loud"}))
}

func TestTraceLevelFor(t *testing.T) {
	assert.Equal(t, tracing.LevelDebug, TraceLevelFor(zapcore.DebugLevel))
	assert.Equal(t, tracing.LevelInfo, TraceLevelFor(zapcore.InfoLevel))
	assert.Equal(t, tracing.LevelError, TraceLevelFor(zapcore.WarnLevel))
}
