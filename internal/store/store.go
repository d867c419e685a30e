// Package store provides the local key/value persistence used by the wizard:
// a flat string-to-string store with file-backed and in-memory
// implementations, plus the draft adapter that owns the wizard's slots in it.
package store

import "sync"

// KV is an unordered string key/value store. Exactly one wizard session
// writes to it at a time; there is no transactional requirement.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set writes value under key, overwriting any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// MemKV is an in-memory KV for tests and ephemeral runs.
type MemKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemKV returns an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string]string)}
}

func (m *MemKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len returns the number of stored keys.
func (m *MemKV) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

var _ KV = (*MemKV)(nil)
