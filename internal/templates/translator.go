package templates

import (
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/skeleton/internal/errors"
)

// Translator maps paths under a template root to paths under an output root.
type Translator struct {
	templateRoot string
	outputRoot   string
	engine       *Engine
	vars         map[string]interface{}
}

// NewTranslator creates a translator. engine and vars are shared with content
// rendering so paths and files resolve identically.
func NewTranslator(templateRoot, outputRoot string, engine *Engine, vars map[string]interface{}) *Translator {
	return &Translator{
		templateRoot: filepath.Clean(templateRoot),
		outputRoot:   filepath.Clean(outputRoot),
		engine:       engine,
		vars:         vars,
	}
}

// Translate returns the output path for path with all placeholders resolved.
// The template root itself translates to "", which callers skip.
func (t *Translator) Translate(path string) (string, error) {
	rel, err := filepath.Rel(t.templateRoot, filepath.Clean(path))
	if err != nil {
		return "", oerrors.Wrap(oerrors.ErrDirectoryAccess,
			fmt.Sprintf("relating %s to template root: %v", path, err))
	}
	if rel == "." {
		return "", nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", oerrors.Wrap(oerrors.ErrDirectoryAccess,
			fmt.Sprintf("path %s is outside template root %s", path, t.templateRoot))
	}

	candidate := filepath.Join(t.outputRoot, rel)
	text := PathToTemplateSyntax(candidate)

	out, err := t.engine.Render(text, t.vars)
	if err != nil {
		return "", oerrors.NewTemplateRenderError(path, text, err)
	}
	return filepath.Clean(out), nil
}

// Root returns the output root with its placeholders resolved, the directory
// that translated paths are placed under.
func (t *Translator) Root() (string, error) {
	text := PathToTemplateSyntax(t.outputRoot)
	out, err := t.engine.Render(text, t.vars)
	if err != nil {
		return "", oerrors.NewTemplateRenderError(t.outputRoot, text, err)
	}
	return filepath.Clean(out), nil
}
