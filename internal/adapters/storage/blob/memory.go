package blob

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	byName map[string][]byte
	closed bool
}

// NewMemory es el medio para dev y tests; se pierde al salir del proceso.
func NewMemory() Store {
	return &memoryStore{byName: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}
	return clone(s.byName[name]), nil
}

func (s *memoryStore) Put(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.byName[name] = clone(data)
	return nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
