// Package cmd provides the skeleton command implementation.
package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/opmodel/skeleton/internal/config"
	oerrors "github.com/opmodel/skeleton/internal/errors"
	"github.com/opmodel/skeleton/internal/output"
	"github.com/opmodel/skeleton/internal/templates"
	"github.com/opmodel/skeleton/internal/version"
)

// now is the clock for the "all done" elapsed time.
var now = time.Now

// NewRootCmd creates the skeleton command.
func NewRootCmd() *cobra.Command {
	settings := config.NewSettingsLoader()

	rootCmd := &cobra.Command{
		Use:   "skeleton [config]",
		Short: "Generate a project tree from a template",
		Long: `skeleton materializes a template directory into an output directory.

Placeholders of the form __name__ in file and directory names, and
{{name}}, {{lower name}} or {{upper name}} in file contents, are replaced
with the variables of the configuration file.

The configuration file defaults to ` + config.DefaultConfigFile + ` in the current
directory (env: SKELETON_CONFIG). Relative paths in it are resolved against
the directory that contains it.`,
		Example: `  skeleton
  skeleton ./templates/PyTemplate.json
  skeleton project.yaml --tree`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := now()

			if err := settings.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			s, err := settings.Resolve(args)
			if err != nil {
				return err
			}

			output.SetupLogging(output.LogConfig{
				Verbose:    s.Verbose,
				Timestamps: output.BoolPtr(s.Timestamps),
			})

			if err := run(s, start); err != nil {
				code := oerrors.ExitCodeFromError(err)
				output.Error("generation failed",
					"kind", oerrors.KindOf(err),
					"exit", oerrors.ExitCodeName(code))
				output.Details(err.Error() + "\n")
				return &oerrors.ExitError{
					Code:    code,
					Err:     err,
					Printed: true,
				}
			}
			return nil
		},
	}

	rootCmd.SetVersionTemplate(version.Get().String() + "\n")

	rootCmd.Flags().BoolP(config.KeyVerbose, "v", false, "Enable verbose output (env: SKELETON_VERBOSE)")
	rootCmd.Flags().Bool(config.KeyTimestamps, true, "Show timestamps in log output (env: SKELETON_TIMESTAMPS)")
	rootCmd.Flags().Bool(config.KeyTree, false, "Print a tree of generated paths, on by default for terminals (env: SKELETON_TREE)")

	return rootCmd
}

// run loads the configuration named by s and generates the template tree.
// start is when the command began, for the elapsed time.
func run(s config.Settings, start time.Time) error {
	output.Debug("starting", "version", version.Version, "config", s.ConfigFile)

	cfg, err := config.Load(s.ConfigFile)
	if err != nil {
		return err
	}

	resolved, err := config.Resolve(cfg, s.ConfigFile)
	if err != nil {
		return err
	}

	output.Info("base path", "path", resolved.BaseDir)
	output.Info("output path", "path", resolved.OutputPath)
	output.Info("templates path", "path", resolved.TemplatesPath)
	output.Debug("variables", "count", len(resolved.Variables))

	result, err := templates.NewGenerator(templates.GenerateOptions{
		TemplateName: resolved.TemplateName,
		TemplateRoot: resolved.TemplateRoot,
		OutputRoot:   resolved.OutputPath,
		Variables:    resolved.Variables,
		Logger:       output.TemplateLogger(resolved.TemplateName),
	}).Generate()
	if err != nil {
		return err
	}

	if s.Tree {
		output.Print(output.RenderFileTree(filepath.Base(result.OutputRoot), result.TreeEntries()))
		output.Println(summaryLine(result))
	}

	if n := result.Overwritten(); n > 0 {
		output.Warn(fmt.Sprintf("%d existing file(s) overwritten", n))
	}
	output.Info("all done", "elapsed", now().Sub(start).Round(time.Millisecond))

	return nil
}

// summaryLine is the checkmark line printed under the tree.
func summaryLine(result *templates.GenerateResult) string {
	return output.FormatCheckmark(fmt.Sprintf("Generated %s in %s (%d directories, %d files)",
		output.StyleNoun.Render(result.TemplateName),
		output.StyleNoun.Render(result.OutputRoot),
		len(result.Directories), len(result.Files)))
}
