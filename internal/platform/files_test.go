package platform

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if !DirExists(testDir) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "lamedb")
	writeFile(t, file, "eDVB services /4/")

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"regular file", file, true},
		{"directory", tempDir, false},
		{"missing", filepath.Join(tempDir, "missing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.expected {
				t.Errorf("FileExists(%s) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCopyFile(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src.tv")
	dst := filepath.Join(tempDir, "dst.tv")
	writeFile(t, src, "#NAME Sport\n")
	writeFile(t, dst, "old content that is longer than the new one\n")

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	if got := readFile(t, dst); got != "#NAME Sport\n" {
		t.Errorf("Expected destination to be truncated and overwritten, got %q", got)
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	tempDir := t.TempDir()
	err := CopyFile(filepath.Join(tempDir, "missing"), filepath.Join(tempDir, "dst"))
	if !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestReplaceFile(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "new", "userbouquet.sport.tv")
	dst := filepath.Join(tempDir, "live", "userbouquet.sport.tv")
	writeFile(t, src, "new")
	writeFile(t, dst, "old")

	if err := ReplaceFile(src, dst); err != nil {
		t.Fatalf("ReplaceFile failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(dst))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected exactly one file at destination, got %d", len(entries))
	}
	if got := readFile(t, dst); got != "new" {
		t.Errorf("Expected new content, got %q", got)
	}
}

func TestReplaceFile_NoExistingDestination(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "a")
	dst := filepath.Join(tempDir, "b")
	writeFile(t, src, "content")

	if err := ReplaceFile(src, dst); err != nil {
		t.Fatalf("ReplaceFile failed: %v", err)
	}
	if got := readFile(t, dst); got != "content" {
		t.Errorf("Expected copied content, got %q", got)
	}
}

func TestCopyDirAndMoveDir(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src")
	writeFile(t, filepath.Join(src, "bouquets.tv"), "index")
	writeFile(t, filepath.Join(src, "sub", "lamedb"), "db")

	copied := filepath.Join(tempDir, "copied")
	if err := CopyDir(src, copied); err != nil {
		t.Fatalf("CopyDir failed: %v", err)
	}
	if got := readFile(t, filepath.Join(copied, "sub", "lamedb")); got != "db" {
		t.Errorf("Expected nested file copied, got %q", got)
	}

	moved := filepath.Join(tempDir, "moved")
	if err := MoveDir(src, moved); err != nil {
		t.Fatalf("MoveDir failed: %v", err)
	}
	if DirExists(src) {
		t.Error("Source should not exist after move")
	}
	if got := readFile(t, filepath.Join(moved, "bouquets.tv")); got != "index" {
		t.Errorf("Expected moved file, got %q", got)
	}
}

func TestTopLevelDirs(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "b-dir", "x"), "")
	writeFile(t, filepath.Join(tempDir, "a-dir", "y"), "")
	writeFile(t, filepath.Join(tempDir, "file.txt"), "")

	dirs, err := TopLevelDirs(tempDir)
	if err != nil {
		t.Fatalf("TopLevelDirs failed: %v", err)
	}
	if !reflect.DeepEqual(dirs, []string{"a-dir", "b-dir"}) {
		t.Errorf("Unexpected dirs: %v", dirs)
	}
}

func TestResetDirectory(t *testing.T) {
	tempDir := t.TempDir()
	dir := filepath.Join(tempDir, "extract")
	writeFile(t, filepath.Join(dir, "stale", "file"), "stale")

	if err := ResetDirectory(dir); err != nil {
		t.Fatalf("ResetDirectory failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty directory, got %d entries", len(entries))
	}
}
