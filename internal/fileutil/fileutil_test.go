package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-mdpicks/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Temp file plus rename
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates parents and writes content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "posts", "2024", "rain.html")
		if err := fileutil.WriteFileAtomic(path, []byte("<p>x</p>"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if string(got) != "<p>x</p>" {
			t.Errorf("content = %q, want %q", got, "<p>x</p>")
		}
		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if info.Mode().Perm() != 0o644 {
				t.Errorf("mode = %v, want 0644", info.Mode().Perm())
			}
		}
	})

	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.html")
		for _, content := range []string{"first", "second"} {
			if err := fileutil.WriteFileAtomic(path, []byte(content), 0o600); err != nil {
				t.Fatalf("WriteFileAtomic(%q) error = %v", content, err)
			}
		}

		got, _ := os.ReadFile(path)
		if string(got) != "second" {
			t.Errorf("content = %q, want %q", got, "second")
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.WriteFileAtomic("", nil, 0o644); !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("WriteFileAtomic(\"\") error = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		parent := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(parent, []byte("x"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := fileutil.WriteFileAtomic(filepath.Join(parent, "out.html"), []byte("x"), 0o644); err == nil {
			t.Error("WriteFileAtomic() expected error when parent is a file")
		}
	})
}

// ---------------------------------------------------------------------------
// TestPathHelpers - FileExists, IsFilePath, IsCSS
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing", path: filepath.Join(dir, "missing.md"), want: false},
	}
	for _, tt := range tests {
		if got := fileutil.FileExists(tt.path); got != tt.want {
			t.Errorf("FileExists(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "picks", want: false},
		{input: "my-style", want: false},
		{input: "./brand.css", want: true},
		{input: "../shared/brand.css", want: true},
		{input: "/abs/brand.css", want: true},
		{input: `C:\styles\brand.css`, want: true},
	}
	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: ".pick { color: red; }", want: true},
		{input: "picks", want: false},
		{input: "./brand.css", want: false},
	}
	for _, tt := range tests {
		if got := fileutil.IsCSS(tt.input); got != tt.want {
			t.Errorf("IsCSS(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
