package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Environment variable prefix for CLI settings.
const envPrefix = "SKELETON"

// Setting keys, shared by flags and environment variables.
const (
	KeyConfig     = "config"
	KeyVerbose    = "verbose"
	KeyTimestamps = "timestamps"
	KeyTree       = "tree"
)

// Settings holds how the CLI runs, as opposed to what it generates.
type Settings struct {
	// ConfigFile is the configuration file path.
	ConfigFile string

	// Verbose enables debug logging.
	Verbose bool

	// Timestamps enables timestamps in log lines.
	Timestamps bool

	// Tree prints a tree of generated paths on success.
	Tree bool
}

// SettingsLoader resolves Settings with precedence flag > env > default.
type SettingsLoader struct {
	v *viper.Viper

	// isTerminal reports whether stdout is a terminal. Decides the tree default.
	isTerminal func() bool
}

// NewSettingsLoader creates a loader reading SKELETON_* environment variables.
func NewSettingsLoader() *SettingsLoader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv(KeyConfig, "SKELETON_CONFIG")
	_ = v.BindEnv(KeyVerbose, "SKELETON_VERBOSE")
	_ = v.BindEnv(KeyTimestamps, "SKELETON_TIMESTAMPS")
	_ = v.BindEnv(KeyTree, "SKELETON_TREE")

	v.SetDefault(KeyConfig, DefaultConfigFile)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyTimestamps, true)

	return &SettingsLoader{
		v: v,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// BindFlags binds the verbose, timestamps and tree flags of flags.
// A flag takes precedence over the environment only when set explicitly.
func (l *SettingsLoader) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range []string{KeyVerbose, KeyTimestamps, KeyTree} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", key, err)
		}
	}
	return nil
}

// Resolve returns the effective settings. A positional argument overrides the
// configuration file from the environment.
func (l *SettingsLoader) Resolve(args []string) (Settings, error) {
	configFile := l.v.GetString(KeyConfig)
	if len(args) > 0 && args[0] != "" {
		configFile = args[0]
	}

	expanded, err := ExpandPath(configFile)
	if err != nil {
		return Settings{}, fmt.Errorf("expanding config path: %w", err)
	}

	tree := l.isTerminal()
	if l.v.IsSet(KeyTree) {
		tree = l.v.GetBool(KeyTree)
	}

	return Settings{
		ConfigFile: expanded,
		Verbose:    l.v.GetBool(KeyVerbose),
		Timestamps: l.v.GetBool(KeyTimestamps),
		Tree:       tree,
	}, nil
}
