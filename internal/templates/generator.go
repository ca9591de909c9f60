package templates

import (
	"os"
	"path/filepath"
	"time"

	oerrors "github.com/opmodel/skeleton/internal/errors"
	"github.com/opmodel/skeleton/internal/output"
)

// Generator handles materializing an output tree from a template.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	if opts.Logger == nil {
		opts.Logger = output.Logger()
	}
	return &Generator{opts: opts}
}

// Generate scans the template root, creates the directories and then renders
// the files. It stops at the first error; earlier writes are kept.
func (g *Generator) Generate() (*GenerateResult, error) {
	start := time.Now()
	logger := g.opts.Logger

	engine := NewEngine()
	translator := NewTranslator(g.opts.TemplateRoot, g.opts.OutputRoot, engine, g.opts.Variables)
	materializer := NewMaterializer(translator, logger)

	logger.Debug("template engine", "helpers", engine.Helpers())

	logger.Info("reading template folder", "path", g.opts.TemplateRoot)
	tree, err := Scan(g.opts.TemplateRoot)
	if err != nil {
		return nil, err
	}
	logger.Debug("template read",
		"directories", len(tree.Directories),
		"files", len(tree.Files))

	for _, s := range tree.Skipped {
		logger.Warn("skipping non-regular template entry", "path", s)
	}

	// The root itself is never an entry, but root-level files need it.
	outputRoot, err := translator.Root()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return nil, oerrors.New(oerrors.KindFilesystemWrite, "creating output root", outputRoot, err)
	}

	logger.Info("creating directories")
	dirs, err := materializer.CreateDirectories(tree.Directories)
	if err != nil {
		return nil, err
	}

	logger.Info("creating files")
	files, err := materializer.CreateFiles(tree.Files)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		TemplateName: g.opts.TemplateName,
		TemplateRoot: g.opts.TemplateRoot,
		OutputRoot:   outputRoot,
		Directories:  dirs,
		Files:        files,
		Skipped:      tree.Skipped,
		Elapsed:      time.Since(start),
	}, nil
}

// TreeEntries returns the result's paths relative to the output root for
// output.RenderFileTree.
func (r *GenerateResult) TreeEntries() []output.TreeEntry {
	entries := make([]output.TreeEntry, 0, len(r.Directories)+len(r.Files))
	for _, group := range [][]Entry{r.Directories, r.Files} {
		for _, e := range group {
			entries = append(entries, output.TreeEntry{
				Path:   relativeTo(r.OutputRoot, e.Target),
				Status: e.Status,
				IsDir:  e.IsDir,
			})
		}
	}
	return entries
}

// relativeTo returns target relative to root, or target when it is not below root.
func relativeTo(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return target
	}
	return rel
}
