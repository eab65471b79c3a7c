package numed

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   []string
		saved   string
	}{
		{"trailing newline", "one\ntwo\n\tthree\n", []string{"one", "two", "\tthree"}, "one\ntwo\n\tthree\n"},
		{"no trailing newline", "a\nb", []string{"a", "b"}, "a\nb\n"},
		{"blank lines", "\n\nx\n\n", []string{"", "", "x", ""}, "\n\nx\n\n"},
		{"carriage returns", "dos\r\nline\r\n", []string{"dos\r", "line\r"}, "dos\r\nline\r\n"},
		{"empty file", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "doc.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			var store DiskStore
			lines, err := store.Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !slices.Equal(lines, tt.lines) {
				t.Fatalf("got %q, want %q", lines, tt.lines)
			}
			if err := store.Save(path, lines); err != nil {
				t.Fatalf("Save: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.saved {
				t.Fatalf("saved %q, want %q", data, tt.saved)
			}
		})
	}
}

func TestDiskStoreLoadMissing(t *testing.T) {
	_, err := DiskStore{}.Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want fs.ErrNotExist", err)
	}
}

func TestDiskStoreSaveKeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "private.txt")
	if err := os.WriteFile(path, []byte("old\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := (DiskStore{}).Save(path, []string{"new"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := fi.Mode().Perm(); perm != 0o600 {
		t.Fatalf("mode %v, want 0600", perm)
	}
}

func TestDiskStoreFailedSaveLeavesNoTrace(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sub")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "keep.txt"), []byte("keep\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := (DiskStore{}).Save(target, []string{"x"}); err == nil {
		t.Fatalf("saving over a directory succeeded")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "sub" {
		t.Fatalf("temporary file left behind: %v", entries)
	}
	if data, err := os.ReadFile(filepath.Join(target, "keep.txt")); err != nil || string(data) != "keep\n" {
		t.Fatalf("directory contents changed: %q, %v", data, err)
	}
}

func TestEditorOpenSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	content := "first\n\tsecond\nthird\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := New(newFakeTerminal(80, 24), DiskStore{})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Fatalf("saved %q, want %q", data, content)
	}
}
