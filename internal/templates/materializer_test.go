package templates

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/skeleton/internal/errors"
	"github.com/opmodel/skeleton/internal/output"
	"github.com/opmodel/skeleton/internal/testutil"
)

func newTestMaterializer(t *testing.T, vars map[string]interface{}) (m *Materializer, tmpl, out string, logs *bytes.Buffer) {
	t.Helper()
	base := t.TempDir()
	tmpl = filepath.Join(base, "tmpl")
	out = filepath.Join(base, "out")
	require.NoError(t, os.MkdirAll(tmpl, 0o755))

	logs = &bytes.Buffer{}
	tr := NewTranslator(tmpl, out, NewEngine(), vars)
	return NewMaterializer(tr, log.New(logs)), tmpl, out, logs
}

func TestMaterializer_CreateDirectories(t *testing.T) {
	m, tmpl, out, logs := newTestMaterializer(t, map[string]interface{}{"Name": "World"})

	dirs := []string{tmpl, filepath.Join(tmpl, "__Name__"), filepath.Join(tmpl, "__Name__", "sub")}
	entries, err := m.CreateDirectories(dirs)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, filepath.Join(out, "World"), entries[0].Target)
	assert.Equal(t, output.StatusCreated, entries[0].Status)
	assert.True(t, entries[0].IsDir)
	assert.DirExists(t, filepath.Join(out, "World", "sub"))
	assert.Contains(t, logs.String(), "creating path")

	logs.Reset()
	entries, err = m.CreateDirectories(dirs)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, output.StatusExists, e.Status)
	}
	assert.Contains(t, logs.String(), "path exists")
}

func TestMaterializer_CreateFiles(t *testing.T) {
	m, tmpl, out, logs := newTestMaterializer(t, map[string]interface{}{"Name": "World"})
	src := testutil.WriteFile(t, tmpl, "__Name__.txt", "Hello {{Name}}!")
	require.NoError(t, os.MkdirAll(out, 0o755))

	entries, err := m.CreateFiles([]string{src})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, output.StatusCreated, entries[0].Status)
	assert.Contains(t, logs.String(), "file created")

	got, err := os.ReadFile(filepath.Join(out, "World.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", string(got))

	logs.Reset()
	entries, err = m.CreateFiles([]string{src})
	require.NoError(t, err)
	assert.Equal(t, output.StatusOverwritten, entries[0].Status)
	assert.Contains(t, logs.String(), "file overwritten")
}

func TestMaterializer_OverwriteTruncates(t *testing.T) {
	m, tmpl, out, _ := newTestMaterializer(t, nil)
	src := testutil.WriteFile(t, tmpl, "a.txt", "short")
	testutil.WriteFile(t, out, "a.txt", "a much longer previous content")

	_, err := m.CreateFiles([]string{src})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(out, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestMaterializer_KeepsPermissions(t *testing.T) {
	m, tmpl, out, _ := newTestMaterializer(t, nil)
	src := testutil.WriteFile(t, tmpl, "run.sh", "#!/bin/sh\necho hi\n")
	require.NoError(t, os.Chmod(src, 0o755))
	require.NoError(t, os.MkdirAll(out, 0o755))

	_, err := m.CreateFiles([]string{src})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(out, "run.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100, "owner execute bit should be kept")
}

func TestMaterializer_NonUTF8(t *testing.T) {
	m, tmpl, out, _ := newTestMaterializer(t, nil)
	src := filepath.Join(tmpl, "logo.bin")
	require.NoError(t, os.WriteFile(src, []byte{0xff, 0xfe, 0x00, 0x81}, 0o644))
	require.NoError(t, os.MkdirAll(out, 0o755))

	_, err := m.CreateFiles([]string{src})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrEncoding))
	assert.NoFileExists(t, filepath.Join(out, "logo.bin"))
}

func TestMaterializer_RenderError(t *testing.T) {
	m, tmpl, out, _ := newTestMaterializer(t, nil)
	src := testutil.WriteFile(t, tmpl, "broken.txt", "Hello {{Name")
	require.NoError(t, os.MkdirAll(out, 0o755))

	_, err := m.CreateFiles([]string{src})
	require.Error(t, err)
	assert.Equal(t, oerrors.KindTemplateRender, oerrors.KindOf(err))
	assert.NoFileExists(t, filepath.Join(out, "broken.txt"))
}

func TestMaterializer_MissingParent(t *testing.T) {
	m, tmpl, _, _ := newTestMaterializer(t, nil)
	src := testutil.WriteFile(t, tmpl, "a.txt", "a")

	_, err := m.CreateFiles([]string{src})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrFilesystemWrite))
}
