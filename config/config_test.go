package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satkit/gosat/solver"
)

func TestLoadDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := viper.New()
	require.NoError(t, BindFlags(fs, v))
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default().Verbose, cfg.Verbose)
	assert.Equal(t, 0, cfg.MaxConflicts)
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := viper.New()
	require.NoError(t, BindFlags(fs, v))
	require.NoError(t, fs.Parse([]string{"--verbose", "--max-conflicts=10", "--negative-polarity"}))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NegativePolarity)
	assert.Equal(t, 10, cfg.MaxConflicts)
}

func TestLoadRejectsNegativeMaxConflicts(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := viper.New()
	require.NoError(t, BindFlags(fs, v))
	require.NoError(t, fs.Parse([]string{"--max-conflicts=-1"}))

	_, err := Load(v)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	cfg := Config{NegativePolarity: true, MaxConflicts: 5}
	s := solver.NewSolver()
	cfg.Apply(s)
	// Apply has no exported getters to assert against directly; the
	// real assertion is that it compiles and that Apply and a later
	// Solve don't panic. This formula is solved without any conflict,
	// so the cap is never reached.
	s.AddClause(1, 2)
	s.AddClause(-1, -2)
	_ = s.Solve()
}
