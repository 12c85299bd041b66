package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"ordemfacil/internal/usecase/interfaces"
)

// FileSnapshotStore writes each collection as one pretty-printed JSON file
// under a data directory, named after its key. This is the default local
// backend. Writes go through a temp file plus rename so a crash never leaves
// a half-written snapshot.
type FileSnapshotStore struct {
	dir string
}

var _ interfaces.SnapshotStore = (*FileSnapshotStore)(nil)

func NewFileSnapshotStore(dir string) (*FileSnapshotStore, error) {
	if dir == "" {
		dir = getenvDefault("DATA_DIR", "data")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileSnapshotStore{dir: dir}, nil
}

func (s *FileSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *FileSnapshotStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
