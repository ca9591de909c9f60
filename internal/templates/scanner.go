package templates

import (
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/opmodel/skeleton/internal/errors"
)

// Tree is the read-only listing of a template directory.
// Every path is rooted at Root.
type Tree struct {
	// Root is the template root as given to Scan.
	Root string

	// Directories lists every directory, Root first.
	Directories []string

	// Files lists every file to render.
	Files []string

	// Skipped lists symlinked directories and non-regular files that were not
	// descended into or rendered.
	Skipped []string
}

// Scan walks root depth-first in lexical order. Symlinks to directories are
// recorded in Skipped instead of being followed, so cycles cannot occur;
// symlinks to regular files are listed as files.
func Scan(root string) (*Tree, error) {
	// A symlinked root is followed once; paths are reported under root.
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, oerrors.New(oerrors.KindDirectoryAccess, "reading template folder", root, err)
	}

	tree := &Tree{Root: root}

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return oerrors.New(oerrors.KindDirectoryAccess, "reading template folder", path, err)
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return err
		}
		reported := root
		if rel != "." {
			reported = filepath.Join(root, rel)
		}

		switch {
		case d.IsDir():
			tree.Directories = append(tree.Directories, reported)
		case d.Type()&fs.ModeSymlink != 0:
			info, err := os.Stat(path)
			if err != nil {
				return oerrors.New(oerrors.KindDirectoryAccess, "resolving symlink", reported, err)
			}
			if info.Mode().IsRegular() {
				tree.Files = append(tree.Files, reported)
			} else {
				tree.Skipped = append(tree.Skipped, reported)
			}
		case d.Type().IsRegular():
			tree.Files = append(tree.Files, reported)
		default:
			tree.Skipped = append(tree.Skipped, reported)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tree, nil
}
