package templates

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/opmodel/skeleton/internal/output"
)

// Entry is one materialized output path.
type Entry struct {
	// Source is the template path.
	Source string

	// Target is the translated output path.
	Target string

	// IsDir reports whether the entry is a directory.
	IsDir bool

	// Status is output.StatusCreated, output.StatusExists or output.StatusOverwritten.
	Status string
}

// GenerateOptions configures a generation run.
type GenerateOptions struct {
	// TemplateName is used for logging and the summary.
	TemplateName string

	// TemplateRoot is the absolute template directory.
	TemplateRoot string

	// OutputRoot is the absolute output directory.
	OutputRoot string

	// Variables are substituted into paths and contents.
	Variables map[string]interface{}

	// Logger receives progress lines. Defaults to output.Logger().
	Logger *log.Logger
}

// GenerateResult contains the result of a generation run.
type GenerateResult struct {
	// TemplateName is the template that was used.
	TemplateName string

	// TemplateRoot is the template directory that was read.
	TemplateRoot string

	// OutputRoot is the directory where output was written, with its
	// placeholders resolved.
	OutputRoot string

	// Directories are the directory entries in creation order.
	Directories []Entry

	// Files are the file entries in write order.
	Files []Entry

	// Skipped are template paths that were not materialized.
	Skipped []string

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Overwritten reports how many files replaced existing content.
func (r *GenerateResult) Overwritten() int {
	n := 0
	for _, f := range r.Files {
		if f.Status == output.StatusOverwritten {
			n++
		}
	}
	return n
}
