package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lavaworld/logger"
)

func TestNew(t *testing.T) {
	lggr, err := logger.New()
	require.NoError(t, err)
	require.NotNil(t, lggr)

	cfg := logger.Config{Level: zapcore.DebugLevel, Encoding: "console"}
	lggr, err = cfg.New()
	require.NoError(t, err)
	assert.Equal(t, "", lggr.Name())
}

func TestNew_BadEncoding(t *testing.T) {
	cfg := logger.Config{Encoding: "yaml"}
	_, err := cfg.New()
	require.Error(t, err)
}

func TestNamedWith(t *testing.T) {
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)

	sub := lggr.Named("solver").With("run", "r1")
	assert.Equal(t, "solver", sub.Name())
	sub.Infow("built", "islands", 3)
	sub.Debug("dropped below level")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "built", entries[0].Message)
	assert.Equal(t, "solver", entries[0].LoggerName)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "r1", ctx["run"])
	assert.EqualValues(t, 3, ctx["islands"])
}

func TestParseLevel(t *testing.T) {
	lvl, err := logger.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)

	_, err = logger.ParseLevel("loud")
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	lggr := logger.Nop()
	lggr.Errorw("ignored", "k", "v")
	assert.NotNil(t, lggr.With("k", "v"))
}
