package adapter

import (
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"lukechampine.com/blake3"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files in lexical order", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.js"), "")
		writeTestFile(t, filepath.Join(root, "a.js"), "")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.js")
		writeTestFile(t, child, "")

		var files []string
		err := adapter.Walk(m.Path(root), func(path m.Path, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() {
				files = append(files, string(path))
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		want := []string{filepath.Join(root, "a.js"), filepath.Join(root, "b.js"), child}
		if len(files) != len(want) {
			t.Fatalf("Walk() visited %v, want %v", files, want)
		}

		for i := range want {
			if files[i] != want[i] {
				t.Fatalf("Walk() order = %v, want %v", files, want)
			}
		}
	})

	t.Run("skip dir prunes a subtree", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "index.js"), "module.exports = {}\n")

		vendor := filepath.Join(root, "node_modules")
		mustMkdir(t, vendor)
		writeTestFile(t, filepath.Join(vendor, "dep.js"), "module.exports = {}\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path m.Path, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() && entry.Name() == "node_modules" {
				return filepath.SkipDir
			}
			visited = append(visited, string(path))
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if containsPath(visited, filepath.Join(vendor, "dep.js")) {
			t.Fatalf("Walk() visited a file inside a skipped directory")
		}

		if !containsPath(visited, filepath.Join(root, "index.js")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("missing root reports an error", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		missing := filepath.Join(t.TempDir(), "absent")
		err := adapter.Walk(m.Path(missing), func(_ m.Path, _ fs.DirEntry, err error) error {
			return err
		})
		if err == nil {
			t.Fatalf("Walk() error = nil for missing root")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "index.js")
	content := "const x = require('./x')\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "index.js")
	content := []byte("import x from './x'\n")
	writeTestBytes(t, path, content)

	sum := blake3.Sum256(content)
	expected := hex.EncodeToString(sum[:])

	hash, err := adapter.HashFile(m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	if hash != expected {
		t.Fatalf("HashFile() = %s, want %s", hash, expected)
	}
}

func TestLocalSourceFSAdapter_FileInfoAndExists(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "index.js")
	writeTestFile(t, path, "")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	if !adapter.Exists(m.Path(path)) {
		t.Fatalf("Exists() = false for existing file")
	}

	if !adapter.Exists(m.Path(root)) {
		t.Fatalf("Exists() = false for existing directory")
	}

	if adapter.Exists(m.Path(filepath.Join(root, "missing.js"))) {
		t.Fatalf("Exists() = true for missing file")
	}
}

func TestLocalSourceFSAdapter_WriteFileCreatesParents(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	target := filepath.Join(t.TempDir(), "abi", "nested", "Diamond.json")
	if err := adapter.WriteFile(m.Path(target), []byte("[]"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}

	if string(got) != "[]" {
		t.Fatalf("WriteFile() wrote %q", got)
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/sub/dir/file.js")

	rel, err := adapter.RelPath(base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("sub", "dir", "file.js") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("sub", "dir", "file.js"))
	}

	abs, err := adapter.AbsPath("/tmp/project/../project/./x.js")
	if err != nil {
		t.Fatalf("AbsPath() error = %v", err)
	}

	if string(abs) != "/tmp/project/x.js" {
		t.Fatalf("AbsPath() = %s", abs)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
