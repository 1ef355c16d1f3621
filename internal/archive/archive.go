// Package archive moves a previously translated documentation tree out of
// the way so a run starts from an empty destination.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveDestination moves dir to <parent>/archive/<name>-<timestamp> and
// returns the archived path
func ArchiveDestination(dir string) (string, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("destination directory does not exist: %s", dir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat destination directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("destination is not a directory: %s", dir)
	}

	dir = filepath.Clean(dir)
	archiveDir := filepath.Join(filepath.Dir(dir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(dir)
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405")))

	// Two archives within the same second
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405.000000")))
	}

	if err := os.Rename(dir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive destination directory: %w", err)
	}

	return archivePath, nil
}
