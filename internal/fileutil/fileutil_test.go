package fileutil_test

// Notes:
// - WriteFileAtomic: the Write and Close error branches are not tested because
//   triggering disk write failures is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestExistence - FileExists, DirExists, PathExists
// ---------------------------------------------------------------------------

func TestExistence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.md")

	tests := []struct {
		name       string
		path       string
		wantFile   bool
		wantDir    bool
		wantExists bool
	}{
		{"regular file", file, true, false, true},
		{"directory", dir, false, true, true},
		{"missing", missing, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists() = %v, want %v", got, tt.wantFile)
			}
			if got := fileutil.DirExists(tt.path); got != tt.wantDir {
				t.Errorf("DirExists() = %v, want %v", got, tt.wantDir)
			}
			if got := fileutil.PathExists(tt.path); got != tt.wantExists {
				t.Errorf("PathExists() = %v, want %v", got, tt.wantExists)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkdownExtension - IsMarkdown
// ---------------------------------------------------------------------------

func TestMarkdownExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"README.md", true},
		{"notes.markdown", true},
		{"UPPER.MD", true},
		{"dir/sub/file.md", true},
		{"page.html", false},
		{"noext", false},
		{"md", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsMarkdown(tt.path); got != tt.want {
				t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, ext, want string
	}{
		{"doc.md", ".html", "doc.html"},
		{"a/b/notes.markdown", ".html", "a/b/notes.html"},
		{"noext", ".html", "noext.html"},
		{"v1.2/readme.md", ".html", "v1.2/readme.html"},
	}

	for _, tt := range tests {
		if got := fileutil.ReplaceExtension(tt.path, tt.ext); got != tt.want {
			t.Errorf("ReplaceExtension(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"site", false},
		{"my-config", false},
		{"./site.yaml", true},
		{"/etc/md2html.yaml", true},
		{`C:\md2html.yaml`, true},
		{"sub/dir", true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDecodeText - Encoding detection
// ---------------------------------------------------------------------------

func TestDecodeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"plain UTF-8", []byte("# Titre été"), "# Titre été"},
		{"UTF-8 BOM removed", []byte("\xEF\xBB\xBF# T"), "# T"},
		{"UTF-16LE with BOM", []byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "hi"},
		{"UTF-16BE with BOM", []byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, "hi"},
		{"empty", []byte{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.DecodeText(bytes.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeText_InvalidUTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
	}{
		{"latin-1 byte", []byte("caf\xe9")},
		{"truncated sequence", []byte("ok \xc3")},
		{"stray continuation", []byte("\x80abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.DecodeText(bytes.NewReader(tt.input))
			if !errors.Is(err, encoding.ErrInvalidUTF8) {
				t.Errorf("DecodeText(%q) = %q, %v, want encoding.ErrInvalidUTF8", tt.input, got, err)
			}
		})
	}
}

func TestReadText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "in.md")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFhello"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := fileutil.ReadText(path)
	if err != nil {
		t.Fatalf("ReadText() error: %v", err)
	}
	if got != "hello" {
		t.Errorf("ReadText() = %q, want %q", got, "hello")
	}

	_, err = fileutil.ReadText(filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Temp file + rename
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a", "b", "out.html")
		if err := fileutil.WriteFileAtomic(path, []byte("<p>x</p>")); err != nil {
			t.Fatalf("WriteFileAtomic() error: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "<p>x</p>" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("truncates existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.html")
		if err := os.WriteFile(path, []byte("a much longer previous content"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new")); err != nil {
			t.Fatalf("WriteFileAtomic() error: %v", err)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fileutil.WriteFileAtomic(filepath.Join(dir, "out.html"), []byte("x")); err != nil {
			t.Fatal(err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})

	t.Run("parent is a regular file", func(t *testing.T) {
		t.Parallel()

		blocker := filepath.Join(t.TempDir(), "blocker")
		if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		err := fileutil.WriteFileAtomic(filepath.Join(blocker, "sub", "out.html"), []byte("x"))
		if !errors.Is(err, fileutil.ErrCreateDirectory) {
			t.Errorf("error = %v, want ErrCreateDirectory", err)
		}
	})

	t.Run("target is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "taken")
		if err := os.Mkdir(target, 0o750); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFileAtomic(target, []byte("x")); err == nil {
			t.Error("expected error writing over a directory")
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("temp file left behind: %d entries", len(entries))
		}
	})
}
