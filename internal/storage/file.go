package storage

import (
	"os"
	"path/filepath"
)

const fileExt = ".json"

// FileBackend stores one <key>.json file per key under a profile
// directory. It is the default backend.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a FileBackend rooted at dir. The directory is
// created lazily on first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Dir returns the backing directory.
func (b *FileBackend) Dir() string {
	return b.dir
}

func (b *FileBackend) keyPath(key string) string {
	return filepath.Join(b.dir, key+fileExt)
}

// Get reads the value stored under key.
func (b *FileBackend) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.keyPath(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Put writes value under key, overwriting any prior value.
func (b *FileBackend) Put(key string, value []byte) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(b.keyPath(key), value, 0o644)
}

// Delete removes the value stored under key. Deleting a missing key is
// not an error.
func (b *FileBackend) Delete(key string) error {
	err := os.Remove(b.keyPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op for the file backend.
func (b *FileBackend) Close() error {
	return nil
}
