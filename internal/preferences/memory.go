package preferences

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore builds an in-process store for tests and development.
func NewMemoryStore() Store {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Save(_ context.Context, name, phone, token string) error {
	for i, value := range []string{name, phone, token} {
		s.mu.Lock()
		s.values[keys()[i]] = value
		s.mu.Unlock()
	}
	return nil
}

func (s *memoryStore) Load(_ context.Context) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var rec Record
	for _, key := range keys() {
		if value, ok := s.values[key]; ok {
			rec.set(key, value)
		}
	}
	return rec, nil
}
