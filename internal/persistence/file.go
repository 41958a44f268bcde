package persistence

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDataFile is the well-known key the state blob lives under.
const DefaultDataFile = "finance-data.json"

// FileBlobStore keeps the blob in a single file on disk.
type FileBlobStore struct {
	Path string
}

// NewFileBlobStore creates a file-backed blob store. An empty path uses
// DefaultDataFile in the current directory.
func NewFileBlobStore(path string) *FileBlobStore {
	if path == "" {
		path = DefaultDataFile
	}
	return &FileBlobStore{Path: path}
}

// Load reads the blob file. Missing files surface as os.ErrNotExist so the
// adapter can treat them as "no saved data".
func (f *FileBlobStore) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save writes the blob, creating parent directories as needed.
func (f *FileBlobStore) Save(data []byte) error {
	dir := filepath.Dir(f.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return err
	}
	return nil
}
