package config

import (
	"fmt"
	"os"
	"path/filepath"

	oerrors "github.com/opmodel/skeleton/internal/errors"
)

// Resolve makes the configured paths absolute relative to the directory of
// configPath, not the process working directory, and checks that the
// template tree exists.
func Resolve(cfg *Config, configPath string) (*Resolved, error) {
	absConfig, err := filepath.Abs(configPath)
	if err != nil {
		return nil, oerrors.New(oerrors.KindConfigRead, "resolving configuration path", configPath, err)
	}

	// Relative paths follow the real location of the file, not a symlink to it.
	if real, err := filepath.EvalSymlinks(absConfig); err == nil {
		absConfig = real
	}
	baseDir := filepath.Dir(absConfig)

	outputPath, err := resolveAgainst(baseDir, cfg.OutputPath)
	if err != nil {
		return nil, oerrors.NewConfigValidationError("output_path", absConfig,
			fmt.Sprintf("expanding output_path: %v", err))
	}

	templatesPath, err := resolveAgainst(baseDir, cfg.TemplatesPath)
	if err != nil {
		return nil, oerrors.NewConfigValidationError("templates_path", absConfig,
			fmt.Sprintf("expanding templates_path: %v", err))
	}

	if _, err := os.Stat(templatesPath); err != nil {
		return nil, &oerrors.DetailError{
			Kind:     oerrors.KindPathNotFound,
			Message:  "templates path does not exist",
			Location: templatesPath,
			Field:    "templates_path",
			Hint:     "templates_path is resolved relative to the configuration file's directory.",
			Cause:    err,
		}
	}

	templateRoot := filepath.Join(templatesPath, cfg.TemplateName)

	info, err := os.Stat(templateRoot)
	if err != nil {
		return nil, &oerrors.DetailError{
			Kind:     oerrors.KindPathNotFound,
			Message:  "template path does not exist",
			Location: templateRoot,
			Field:    "template_name",
			Hint:     fmt.Sprintf("Create %q or choose another template_name.", templateRoot),
			Cause:    err,
		}
	}
	if !info.IsDir() {
		return nil, oerrors.NewPathNotFoundError("template path is not a directory", templateRoot,
			"template_name must name a directory inside templates_path.")
	}

	return &Resolved{
		ConfigFile:    absConfig,
		BaseDir:       baseDir,
		OutputPath:    outputPath,
		TemplatesPath: templatesPath,
		TemplateName:  cfg.TemplateName,
		TemplateRoot:  templateRoot,
		Variables:     cfg.Variables,
	}, nil
}
