package repository

import (
	"context"
	"sync"

	"ordemfacil/internal/usecase/interfaces"
)

// MemorySnapshotStore is the test/ephemeral backend.
type MemorySnapshotStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ interfaces.SnapshotStore = (*MemorySnapshotStore)(nil)

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{data: map[string][]byte{}}
}

func (s *MemorySnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemorySnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)
	s.mu.Lock()
	s.data[key] = stored
	s.mu.Unlock()
	return nil
}
