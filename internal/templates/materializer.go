package templates

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	oerrors "github.com/opmodel/skeleton/internal/errors"
	"github.com/opmodel/skeleton/internal/output"
)

// Materializer writes translated directories and rendered files.
// It never deletes anything, and a failure leaves earlier writes in place.
type Materializer struct {
	translator *Translator
	engine     *Engine
	vars       map[string]interface{}
	log        *log.Logger
}

// NewMaterializer creates a materializer rendering contents with the same
// engine and variables as translator.
func NewMaterializer(translator *Translator, logger *log.Logger) *Materializer {
	return &Materializer{
		translator: translator,
		engine:     translator.engine,
		vars:       translator.vars,
		log:        logger,
	}
}

// CreateDirectories creates every translated directory that does not exist.
// Existing directories are left as-is and reported with a warning.
func (m *Materializer) CreateDirectories(dirs []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(dirs))

	for _, dir := range dirs {
		target, err := m.translator.Translate(dir)
		if err != nil {
			return entries, err
		}
		if target == "" {
			continue
		}

		entry := Entry{Source: dir, Target: target, IsDir: true}

		_, err = os.Stat(target)
		switch {
		case err == nil:
			m.log.Warn("path exists", "path", target)
			entry.Status = output.StatusExists
		case errors.Is(err, fs.ErrNotExist):
			m.log.Info("creating path", "path", target)
			if err := os.MkdirAll(target, 0o755); err != nil {
				return entries, oerrors.New(oerrors.KindFilesystemWrite, "creating directory", target, err)
			}
			entry.Status = output.StatusCreated
		default:
			return entries, oerrors.New(oerrors.KindFilesystemWrite, "checking directory", target, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// CreateFiles renders every file and writes it to its translated path,
// overwriting existing files with a warning.
func (m *Materializer) CreateFiles(files []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(files))

	for _, file := range files {
		target, err := m.translator.Translate(file)
		if err != nil {
			return entries, err
		}

		entry, err := m.createFile(file, target)
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (m *Materializer) createFile(source, target string) (Entry, error) {
	entry := Entry{Source: source, Target: target}

	info, err := os.Stat(source)
	if err != nil {
		return entry, oerrors.New(oerrors.KindDirectoryAccess, "reading template file", source, err)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return entry, oerrors.New(oerrors.KindDirectoryAccess, "reading template file", source, err)
	}

	if !utf8.Valid(data) {
		return entry, &oerrors.DetailError{
			Kind:     oerrors.KindEncoding,
			Message:  "template file is not valid UTF-8",
			Location: source,
			Hint:     "Only UTF-8 text files can be used as templates.",
		}
	}

	rendered, err := m.engine.Render(string(data), m.vars)
	if err != nil {
		return entry, oerrors.NewTemplateRenderError(source, string(data), err)
	}

	_, statErr := os.Stat(target)
	exists := statErr == nil

	if err := writeFile(target, rendered, info.Mode().Perm()); err != nil {
		return entry, oerrors.New(oerrors.KindFilesystemWrite, "writing file", target, err)
	}

	if exists {
		m.log.Warn("file overwritten", "path", target)
		entry.Status = output.StatusOverwritten
	} else {
		m.log.Info("file created", "path", target)
		entry.Status = output.StatusCreated
	}

	return entry, nil
}

// writeFile truncates or creates path and writes content. perm applies only
// when the file is created.
func writeFile(path, content string, perm fs.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.WriteString(f, content)
	return err
}
