package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the index file name inside the miso data directory.
const FileName = "labels.json"

// FileStore keeps the index as a pretty-printed JSON array of strings.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path. The file and its
// parent directories are created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the index file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the index. A missing file is an empty index.
func (s *FileStore) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrCorrupt, s.path, err)
	}

	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, s.path, err)
	}
	if labels == nil {
		// "null" decodes without error but is not a list.
		return nil, fmt.Errorf("%w: %s does not hold a JSON array", ErrCorrupt, s.path)
	}

	labels, dup := dedupe(labels)
	if dup {
		slog.Warn("label index has duplicate entries, keeping first occurrence", "path", s.path)
	}
	return labels, nil
}

// Save replaces the index file. The new content is written to a temporary
// file in the same directory and renamed over the old one, so an
// interrupted write never leaves a half-written index behind.
func (s *FileStore) Save(labels []string) error {
	if labels == nil {
		labels = []string{}
	}
	data, err := json.MarshalIndent(labels, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrWrite, dir, err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
