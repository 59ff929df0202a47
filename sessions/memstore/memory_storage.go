package memstore

import (
	"sync"

	"github.com/jrsteele09/go-wallet-web/sessions"
)

var _ sessions.Storage = (*MemoryStorage)(nil)

// MemoryStorage is an in-memory implementation of sessions.Storage
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty in-memory storage
func New() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string]string),
	}
}

// Get retrieves a value by key
func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok
}

// Set creates or replaces a value
func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Remove deletes a value
func (m *MemoryStorage) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key) // Already doesn't exist, no error
	return nil
}

// Len is the number of stored keys
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
