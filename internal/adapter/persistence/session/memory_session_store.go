package session

import (
	"context"
	"sync"

	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase/interfaces"
)

// MemorySessionStore is the fallback when no redis is configured. Sessions
// live until restart regardless of the persistent flag; the flag still
// drives the remember-me clearing semantics in the auth use case.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

var _ interfaces.SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[string]entities.Session{}}
}

func (s *MemorySessionStore) Save(ctx context.Context, sess entities.Session) error {
	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, token string) (entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[token], nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) DeleteByUser(ctx context.Context, userID int) error {
	s.mu.Lock()
	for token, sess := range s.sessions {
		if sess.UserID == userID {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
	return nil
}
