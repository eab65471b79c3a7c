package numed

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore loads and persists documents as lists of raw lines.
type FileStore interface {
	// Load returns the lines of the file at path. A missing file gives an
	// error that matches fs.ErrNotExist.
	Load(path string) ([]string, error)
	// Save replaces the file at path. A failed save leaves the previous
	// file intact.
	Save(path string, lines []string) error
}

// DiskStore is a FileStore backed by the local file system.
type DiskStore struct{}

// Load reads the file at path and splits it into lines.
// The newline ending the last line does not produce an extra empty line.
func (DiskStore) Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	lines := strings.Split(string(data), "\n")
	// Remove trailing empty line that results from split of trailing newline
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// Save writes lines to a temporary file next to path, each followed by a
// newline, and renames it over path.
func (DiskStore) Save(path string, lines []string) (err error) {
	perm := fs.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil {
		perm = fi.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = f.Chmod(perm); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
