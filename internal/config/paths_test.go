package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no tilde", "/tmp/x", "/tmp/x"},
		{"relative", "templates", "templates"},
		{"tilde only", "~", home},
		{"tilde slash", "~/skel", filepath.Join(home, "skel")},
		{"tilde user unsupported", "~bob/skel", "~bob/skel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAgainst(t *testing.T) {
	got, err := resolveAgainst("/base/dir", "out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/base/dir", "out"), got)

	got, err = resolveAgainst("/base/dir", "../up")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/base", "up"), got)

	got, err = resolveAgainst("/base/dir", "/abs/./out")
	require.NoError(t, err)
	assert.Equal(t, "/abs/out", got)
}
