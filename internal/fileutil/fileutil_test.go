package fileutil_test

// Notes:
// - WriteFile write/close error branches are not tested because triggering
//   disk write failures is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-nbsite/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Path kind checks
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "page.html")
	if err := os.WriteFile(file, []byte("x"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing path", filepath.Join(dir, "missing"), false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "page.html")
	if err := os.WriteFile(file, []byte("x"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if !fileutil.DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if fileutil.DirExists(file) {
		t.Errorf("DirExists(%q) = true, want false", file)
	}
	if fileutil.DirExists(filepath.Join(dir, "missing")) {
		t.Error("DirExists(missing) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestFindDir / TestFindFile - Ordered candidate discovery
// ---------------------------------------------------------------------------

func TestFindDir(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	first := filepath.Join(base, "notebooks")
	second := filepath.Join(base, "..", "notebooks-elsewhere")
	existing := filepath.Join(base, "other")
	if err := os.Mkdir(existing, 0750); err != nil {
		t.Fatalf("setup: %v", err)
	}

	t.Run("first existing candidate wins", func(t *testing.T) {
		t.Parallel()

		got, err := fileutil.FindDir(first, existing, base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != existing {
			t.Errorf("FindDir() = %q, want %q", got, existing)
		}
	})

	t.Run("no candidate lists tried paths", func(t *testing.T) {
		t.Parallel()

		_, err := fileutil.FindDir(first, second)
		if !errors.Is(err, fileutil.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
		if !strings.Contains(err.Error(), first) || !strings.Contains(err.Error(), second) {
			t.Errorf("error %q should list both candidates", err)
		}
	})
}

func TestFindFile(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	report := filepath.Join(base, "Project_Report.md")
	if err := os.WriteFile(report, []byte("# 1. INTRODUCTION"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, err := fileutil.FindFile(filepath.Join(base, "missing.md"), base, report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != report {
		t.Errorf("FindFile() = %q, want %q (directories are skipped)", got, report)
	}

	if _, err := fileutil.FindFile(filepath.Join(base, "missing.md")); !errors.Is(err, fileutil.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFirstExistingDir(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	docs := filepath.Join(base, "docs", "pages")
	fallback := filepath.Join(base, "pages")

	if got := fileutil.FirstExistingDir(docs, fallback); got != fallback {
		t.Errorf("FirstExistingDir() = %q, want last candidate %q", got, fallback)
	}

	if err := os.MkdirAll(docs, 0750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if got := fileutil.FirstExistingDir(docs, fallback); got != docs {
		t.Errorf("FirstExistingDir() = %q, want %q", got, docs)
	}

	if got := fileutil.FirstExistingDir(); got != "" {
		t.Errorf("FirstExistingDir() = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestEnsureDir - Output directory creation
// ---------------------------------------------------------------------------

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "docs", "pages")
	if err := fileutil.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if !fileutil.DirExists(dir) {
		t.Fatal("directory not created")
	}

	if err := fileutil.EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateFileName - Output file name safety
// ---------------------------------------------------------------------------

func TestValidateFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain name", "04h_code_eda.html", nil},
		{"empty", "", fileutil.ErrEmptyFileName},
		{"forward slash", "../etc/passwd", fileutil.ErrUnsafeName},
		{"backslash", `..\windows`, fileutil.ErrUnsafeName},
		{"null byte", "page\x00.html", fileutil.ErrUnsafeName},
		{"dot dot", "..", fileutil.ErrUnsafeName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateFileName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile - Page output
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("writes content and reports size", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		content := `<div class="content-middle">é</div>`

		path, size, err := fileutil.WriteFile(dir, "page.html", content)
		if err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if path != filepath.Join(dir, "page.html") {
			t.Errorf("path = %q", path)
		}
		if size != int64(len(content)) {
			t.Errorf("size = %d, want %d", size, len(content))
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading result: %v", err)
		}
		if string(got) != content {
			t.Errorf("content = %q, want %q", got, content)
		}

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if perm := info.Mode().Perm(); perm != fileutil.FilePerm {
				t.Errorf("perm = %o, want %o", perm, fileutil.FilePerm)
			}
		}
	})

	t.Run("overwrites and leaves no temp file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if _, _, err := fileutil.WriteFile(dir, "page.html", "old"); err != nil {
			t.Fatalf("first write: %v", err)
		}
		if _, _, err := fileutil.WriteFile(dir, "page.html", "new"); err != nil {
			t.Fatalf("second write: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("dir has %d entries, want 1", len(entries))
		}
		got, _ := os.ReadFile(filepath.Join(dir, "page.html"))
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("unsafe name is rejected", func(t *testing.T) {
		t.Parallel()

		_, _, err := fileutil.WriteFile(t.TempDir(), "../escape.html", "x")
		if !errors.Is(err, fileutil.ErrUnsafeName) {
			t.Errorf("error = %v, want ErrUnsafeName", err)
		}
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Parallel()

		_, _, err := fileutil.WriteFile(filepath.Join(t.TempDir(), "missing"), "page.html", "x")
		if err == nil {
			t.Error("expected error, got nil")
		}
	})
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name versus path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"default", false},
		{"my-site", false},
		{"./site.yaml", true},
		{"../shared/site.yaml", true},
		{"/absolute/site.yaml", true},
		{`C:\sites\site.yaml`, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
