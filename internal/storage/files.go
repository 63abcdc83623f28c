package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidFilename = errors.New("invalid filename")

// FileStore persists generated logo images on local disk.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logo directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes image bytes under a name derived from the logo ID and MIME
// type, returning the stored filename.
func (s *FileStore) Save(logoID string, data []byte, mimeType string) (string, error) {
	if err := validateName(logoID); err != nil {
		return "", err
	}

	filename := logoID + extensionFor(mimeType)
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write logo file: %w", err)
	}

	return filename, nil
}

// Read loads a stored image by filename. Names containing path separators
// or parent references are rejected before touching the filesystem.
func (s *FileStore) Read(filename string) ([]byte, error) {
	if err := validateName(filename); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, err
	}
	return data, nil
}

func validateName(name string) error {
	if name == "" ||
		strings.Contains(name, "/") ||
		strings.Contains(name, "\\") ||
		strings.Contains(name, "..") ||
		strings.ContainsRune(name, filepath.Separator) {
		return ErrInvalidFilename
	}
	return nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/svg+xml":
		return ".svg"
	case "image/jpeg":
		return ".jpg"
	default:
		return ".png"
	}
}
