package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewVerboseEnablesDebug(t *testing.T) {
	l, err := New(true)
	require.NoError(t, err)
	defer l.Sync()
	assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNewQuietDisablesDebug(t *testing.T) {
	l, err := New(false)
	require.NoError(t, err)
	defer l.Sync()
	assert.False(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
}
