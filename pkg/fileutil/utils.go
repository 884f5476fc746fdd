package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DefaultOutputPath derives an output filename from the input by
// inserting a suffix before the extension.
func DefaultOutputPath(inputPath, suffix string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	nameWithoutExt := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".csv"
	}
	return filepath.Join(dir, nameWithoutExt+suffix+ext)
}

func EnsureDirectoryExists(path string) error {
	return os.MkdirAll(path, 0755)
}
