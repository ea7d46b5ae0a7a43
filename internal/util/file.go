package util

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var ErrNoMatchingFile = errors.New("no matching files")

// WriteFileAtomic writes data next to output and renames it into place, so a
// reader never sees a half-written file.
func WriteFileAtomic(output string, data []byte) error {
	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(output)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	tmpName := tmp.Name()

	if err := writeAndSync(tmp, data); err != nil {
		if cerr := tmp.Close(); cerr != nil {
			log.Printf("error closing temp file %s: %v", tmpName, cerr)
		}
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", output, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", output, err)
	}

	if err := os.Rename(tmpName, output); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", output, err)
	}

	return nil
}

func writeAndSync(f *os.File, data []byte) error {
	n, err := f.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return io.ErrShortWrite
	}

	return f.Sync()
}

// LatestFile returns the most recently modified regular file in dir whose
// extension is one of exts (lower case, with dot).
func LatestFile(dir string, exts ...string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var (
		best    string
		bestMod int64
	)
	for _, e := range entries {
		if e.IsDir() || !hasExt(e.Name(), exts) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}

		if mod := info.ModTime().UnixNano(); best == "" || mod > bestMod {
			best = filepath.Join(dir, e.Name())
			bestMod = mod
		}
	}

	if best == "" {
		return "", fmt.Errorf("%s: %w", dir, ErrNoMatchingFile)
	}

	return best, nil
}

func hasExt(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}

	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}

	return false
}
