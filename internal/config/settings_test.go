package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.BoolP(KeyVerbose, "v", false, "")
	flags.Bool(KeyTimestamps, true, "")
	flags.Bool(KeyTree, false, "")
	return flags
}

func newTestLoader(t *testing.T, tty bool, args ...string) *SettingsLoader {
	t.Helper()
	flags := newTestFlags()
	require.NoError(t, flags.Parse(args))

	l := NewSettingsLoader()
	l.isTerminal = func() bool { return tty }
	require.NoError(t, l.BindFlags(flags))
	return l
}

func TestSettings_Defaults(t *testing.T) {
	l := newTestLoader(t, false)

	s, err := l.Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigFile, s.ConfigFile)
	assert.False(t, s.Verbose)
	assert.True(t, s.Timestamps)
	assert.False(t, s.Tree)
}

func TestSettings_TreeDefaultsToTerminal(t *testing.T) {
	s, err := newTestLoader(t, true).Resolve(nil)
	require.NoError(t, err)
	assert.True(t, s.Tree)
}

func TestSettings_EnvOverridesDefault(t *testing.T) {
	t.Setenv("SKELETON_CONFIG", "from-env.json")
	t.Setenv("SKELETON_VERBOSE", "true")
	t.Setenv("SKELETON_TIMESTAMPS", "false")
	t.Setenv("SKELETON_TREE", "false")

	s, err := newTestLoader(t, true).Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", s.ConfigFile)
	assert.True(t, s.Verbose)
	assert.False(t, s.Timestamps)
	assert.False(t, s.Tree)
}

func TestSettings_FlagOverridesEnv(t *testing.T) {
	t.Setenv("SKELETON_TIMESTAMPS", "false")

	s, err := newTestLoader(t, false, "--timestamps=true", "--tree").Resolve(nil)
	require.NoError(t, err)
	assert.True(t, s.Timestamps)
	assert.True(t, s.Tree)
}

func TestSettings_ArgOverridesEnvConfig(t *testing.T) {
	t.Setenv("SKELETON_CONFIG", "from-env.json")

	s, err := newTestLoader(t, false).Resolve([]string{"cli.json"})
	require.NoError(t, err)
	assert.Equal(t, "cli.json", s.ConfigFile)
}

func TestSettings_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	s, err := newTestLoader(t, false).Resolve([]string{"~/skel/PyTemplate.json"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "skel", "PyTemplate.json"), s.ConfigFile)
}
