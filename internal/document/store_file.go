package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrTooLarge is returned by Save when the content exceeds the size cap.
var ErrTooLarge = errors.New("file exceeds upload size limit")

// FileStore writes uploaded bytes under a single directory.
type FileStore struct {
	dir      string
	maxBytes int64
}

// NewFileStore creates dir if missing. maxBytes <= 0 disables the size cap.
func NewFileStore(dir string, maxBytes int64) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir, maxBytes: maxBytes}, nil
}

// StoredName is the on-disk name for an upload: "<docID>-<originalName>".
func StoredName(docID, originalName string) string {
	base := filepath.Base(strings.ReplaceAll(originalName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return docID + "-" + base
}

// Save copies r into the upload directory and returns the file path.
// Content larger than the size cap fails with ErrTooLarge and leaves no file.
func (s *FileStore) Save(name string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}
	n, err := io.Copy(f, src)
	if err == nil && s.maxBytes > 0 && n > s.maxBytes {
		err = ErrTooLarge
	}
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return path, nil
}

// Open returns the stored file for reading.
func (s *FileStore) Open(path string) (*os.File, error) {
	return os.Open(path)
}

// Remove deletes the stored file. A missing file is not an error.
func (s *FileStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
