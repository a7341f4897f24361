package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MohtashamMurshid/md-to-docx/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - Distinguishes regular files from directories and absences
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.md")
	if err := os.WriteFile(file, []byte("# hi"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory is not a file", dir, false},
		{"missing path", filepath.Join(dir, "absent.md"), false},
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

// ---------------------------------------------------------------------------
// TestDirExists - Distinguishes directories from files and absences
// ---------------------------------------------------------------------------

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing directory", dir, true},
		{"file is not a directory", file, false},
		{"missing path", filepath.Join(dir, "absent"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.DirExists(tt.path); got != tt.want {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Separates bare names from path-like strings
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"bare name", "report", false},
		{"name with extension", "report.yaml", false},
		{"relative path", "./custom.yaml", true},
		{"absolute path", "/etc/md-to-docx/config.yaml", true},
		{"subdirectory", "templates/report", true},
		{"windows separator", `templates\report.yaml`, true},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsURL - Recognizes http and https schemes only
// ---------------------------------------------------------------------------

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"http", "http://example.com/doc.md", true},
		{"https", "https://example.com/doc.md", true},
		{"ftp is not supported", "ftp://example.com/doc.md", false},
		{"plain path", "/tmp/doc.md", false},
		{"scheme mid-string", "see http://example.com", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsURL(tt.input); got != tt.want {
				t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
