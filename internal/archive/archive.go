// Package archive moves processed input files out of the way after a batch
// run, keeping names unique when a file of the same name was archived
// before.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MoveFile moves src into archiveDir and returns the final archive path. A
// name collision gets a timestamp suffix before the extension.
func MoveFile(src, archiveDir string) (string, error) {
	if _, err := os.Stat(src); err != nil {
		return "", fmt.Errorf("source file does not exist: %s", src)
	}

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	name := filepath.Base(src)
	dst := filepath.Join(archiveDir, name)

	if _, err := os.Stat(dst); err == nil {
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		timestamp := time.Now().Format("20060102-150405")
		dst = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", stem, timestamp, ext))

		// Still taken within the same second, fall back to microseconds.
		if _, err := os.Stat(dst); err == nil {
			timestamp = time.Now().Format("20060102-150405.000000")
			dst = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", stem, timestamp, ext))
		}
	}

	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", src, err)
	}
	return dst, nil
}
