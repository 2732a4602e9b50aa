package index

import "sync"

// MemoryStore is an in-memory implementation of Store for testing.
type MemoryStore struct {
	mu     sync.Mutex
	labels []string
}

// NewMemoryStore creates an index holding the given labels.
func NewMemoryStore(labels ...string) *MemoryStore {
	s := &MemoryStore{}
	s.labels, _ = dedupe(labels)
	return s
}

func (s *MemoryStore) Load() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out, nil
}

func (s *MemoryStore) Save(labels []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = make([]string, len(labels))
	copy(s.labels, labels)
	return nil
}
