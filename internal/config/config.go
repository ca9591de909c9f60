// Package config provides configuration loading and path resolution.
package config

// DefaultConfigFile is the configuration file used when none is given.
const DefaultConfigFile = "PyTemplate.json"

// Config is the run configuration as written in the configuration file.
// All four fields are required.
type Config struct {
	// OutputPath is the output root, relative to the configuration file's directory.
	OutputPath string `json:"output_path" validate:"required"`

	// TemplatesPath is the directory holding named templates, relative to the
	// configuration file's directory.
	TemplatesPath string `json:"templates_path" validate:"required"`

	// TemplateName selects a subdirectory of TemplatesPath as the template root.
	TemplateName string `json:"template_name" validate:"required"`

	// Variables maps placeholder names to their values.
	Variables map[string]interface{} `json:"variables" validate:"required"`
}

// Resolved is a Config with every path made absolute.
type Resolved struct {
	// ConfigFile is the absolute, symlink-resolved configuration file path.
	ConfigFile string

	// BaseDir is the directory of ConfigFile. Relative paths resolve against it.
	BaseDir string

	// OutputPath is the absolute output root.
	OutputPath string

	// TemplatesPath is the absolute directory holding named templates.
	TemplatesPath string

	// TemplateName is the selected template.
	TemplateName string

	// TemplateRoot is TemplatesPath joined with TemplateName.
	TemplateRoot string

	// Variables maps placeholder names to their values.
	Variables map[string]interface{}
}
