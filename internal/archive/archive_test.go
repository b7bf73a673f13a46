package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMoveFile(t *testing.T) {
	tmpDir := t.TempDir()
	archiveDir := filepath.Join(tmpDir, "archive")

	src := filepath.Join(tmpDir, "doc.txt")
	if err := os.WriteFile(src, []byte("test content"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	dst, err := MoveFile(src, archiveDir)
	if err != nil {
		t.Fatalf("MoveFile failed: %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("Source file still exists after archiving")
	}
	if dst != filepath.Join(archiveDir, "doc.txt") {
		t.Errorf("Unexpected archive path: %s", dst)
	}
	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read archived file: %v", err)
	}
	if string(content) != "test content" {
		t.Errorf("Archived content = %q", content)
	}
}

func TestMoveFile_NonExistentSource(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := MoveFile(filepath.Join(tmpDir, "nope.txt"), filepath.Join(tmpDir, "archive"))
	if err == nil {
		t.Error("Expected error for non-existent source")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestMoveFile_NameCollision(t *testing.T) {
	tmpDir := t.TempDir()
	archiveDir := filepath.Join(tmpDir, "archive")

	// Archive two files with the same name
	var paths []string
	for i := 0; i < 2; i++ {
		src := filepath.Join(tmpDir, "doc.txt")
		if err := os.WriteFile(src, []byte("content"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		dst, err := MoveFile(src, archiveDir)
		if err != nil {
			t.Fatalf("MoveFile failed on iteration %d: %v", i, err)
		}
		paths = append(paths, dst)
	}

	if paths[0] == paths[1] {
		t.Fatalf("Archive paths are not unique: %s", paths[0])
	}

	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries in archive directory, got %d", len(entries))
	}

	// The collision copy keeps the extension after the timestamp suffix.
	second := filepath.Base(paths[1])
	if !strings.HasPrefix(second, "doc-") || !strings.HasSuffix(second, ".txt") {
		t.Errorf("Unexpected collision name: %s", second)
	}
}
