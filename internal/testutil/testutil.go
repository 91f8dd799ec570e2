// Package testutil builds small fixture trees under t.TempDir() for
// engine and scanner tests: a declarative list of files, directories,
// and symlinks materialized relative to one fixture root.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dustin/go-humanize"
)

// Entry describes one filesystem object to create relative to the
// fixture root.
type Entry struct {
	Path      string      // relative path, e.g. "sub/a.txt"
	Size      string      // humanize size string for regular files, e.g. "1KiB"; "" means empty file
	SymlinkTo string      // if set, Path is created as a symlink pointing here instead of a file
	Dir       bool        // if set (and SymlinkTo is empty), Path is an explicit directory
	Mode      os.FileMode // optional permission bits applied after creation; 0 leaves the OS default
}

// Build creates every Entry under a fresh t.TempDir() and returns its
// root. Parent directories are created implicitly (mkdir -p semantics).
func Build(t *testing.T, entries []Entry) string {
	t.Helper()

	root := t.TempDir()
	for _, e := range entries {
		full := filepath.Join(root, e.Path)

		switch {
		case e.SymlinkTo != "":
			if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
				t.Fatalf("mkdir for symlink %s: %v", e.Path, err)
			}
			if err := os.Symlink(e.SymlinkTo, full); err != nil {
				t.Fatalf("symlink %s -> %s: %v", e.Path, e.SymlinkTo, err)
			}
			continue
		case e.Dir:
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", e.Path, err)
			}
		default:
			if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
				t.Fatalf("mkdir for file %s: %v", e.Path, err)
			}
			size, err := parseSize(e.Size)
			if err != nil {
				t.Fatalf("parse size %q for %s: %v", e.Size, e.Path, err)
			}
			if err := writeSized(full, size); err != nil {
				t.Fatalf("write %s: %v", e.Path, err)
			}
		}

		if e.Mode != 0 {
			if err := os.Chmod(full, e.Mode); err != nil {
				t.Fatalf("chmod %s: %v", e.Path, err)
			}
		}
	}
	return root
}

func parseSize(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

// writeSized streams size zero bytes to path in fixed chunks rather than
// allocating one giant buffer, so multi-megabyte fixtures stay cheap.
func writeSized(path string, size int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if size == 0 {
		return nil
	}

	const chunkSize = 64 * 1024
	buf := make([]byte, chunkSize)
	for size > 0 {
		n := int64(len(buf))
		if size < n {
			n = size
		}
		if _, err := f.Write(buf[:n]); err != nil {
			return err
		}
		size -= n
	}
	return nil
}
