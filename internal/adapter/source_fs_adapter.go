// Package adapter contains infrastructure adapters for the diamondkit CLI.
package adapter

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"lukechampine.com/blake3"
)

// SourceFSAdapter is the filesystem seen by the scanner and the ABI writer.
//
//nolint:interfacebloat // one seam for every file operation the workflows need.
type SourceFSAdapter interface {
	// Walk visits root and everything below it in lexical order.
	Walk(root m.Path, fn WalkFunc) error

	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns the hex BLAKE3-256 digest of a file.
	HashFile(path m.Path) (string, error)

	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether path names an existing file or directory.
	Exists(path m.Path) bool

	// WriteFile writes content, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	AbsPath(path m.Path) (m.Path, error)
	RelPath(base, target m.Path) (m.Path, error)
}

// WalkFunc is called for every entry under a walked root. Returning
// filepath.SkipDir for a directory prunes it.
type WalkFunc func(path m.Path, entry fs.DirEntry, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk wraps filepath.WalkDir.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn WalkFunc) error {
	return filepath.WalkDir(string(root), func(path string, entry fs.DirEntry, err error) error {
		return fn(m.Path(path), entry, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile streams the file through BLAKE3.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := blake3.New(32, nil)
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileInfo stats path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists treats any stat error as missing.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))

	return err == nil
}

// WriteFile creates parent directories before writing.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	return os.WriteFile(string(path), content, perm)
}

// AbsPath returns a cleaned absolute path.
func (a *LocalSourceFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns target relative to base.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
