package vtp

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes f to path, creating missing parent directories, and
// returns the absolute path written. The file is closed on every path.
func WriteFile(path string, f *File) (abs string, err error) {
	abs, err = filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("vtp: resolve %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("vtp: create directory: %w", err)
	}

	out, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("vtp: create file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("vtp: close %s: %w", abs, cerr)
		}
	}()

	w := bufio.NewWriter(out)
	if err := Encode(w, f); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("vtp: flush %s: %w", abs, err)
	}
	return abs, nil
}
