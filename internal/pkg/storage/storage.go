package storage

import "sync"

// Store is a string key-value store with synchronous access, modeled on
// origin-scoped browser storage. The session service takes it as an
// injected capability so the HTTP adapter can back it with a signed
// cookie while tests use the in-memory implementation.
type Store interface {
	// Get returns the stored value and whether the key was present
	Get(key string) (string, bool)
	// Set stores the value under key, replacing any previous value
	Set(key, value string)
	// Remove deletes the key; removing an absent key is a no-op
	Remove(key string)
}

// MemoryStore is a Store backed by a plain map
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value for key
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Remove deletes key
func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
