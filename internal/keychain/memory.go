package keychain

import (
	"fmt"
	"sync"
)

// MemoryStore is an in-memory implementation of Store for testing.
type MemoryStore struct {
	mu      sync.RWMutex
	secrets map[string]string
}

// NewMemoryStore creates a new in-memory secret store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{secrets: make(map[string]string)}
}

func (s *MemoryStore) Set(label, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[label] = secret
	return nil
}

func (s *MemoryStore) Get(label string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.secrets[label]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, label)
	}
	return val, nil
}

func (s *MemoryStore) Delete(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.secrets, label)
	return nil
}

// Len reports how many secrets are held. Tests use it to look for
// entries the index does not know about.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.secrets)
}
