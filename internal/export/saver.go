package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Saver hands exported bytes to whatever stores or downloads them.
type Saver interface {
	Save(filename string, data []byte) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(filename string, data []byte) error

func (f SaverFunc) Save(filename string, data []byte) error { return f(filename, data) }

// DirSaver writes files into Dir, creating it if needed.
type DirSaver struct {
	Dir string
}

func (s DirSaver) Save(filename string, data []byte) error {
	dir := s.Dir
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("export: resolve home: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	log.Printf("[EXPORT] wrote %d bytes to %s", len(data), path)
	return nil
}
