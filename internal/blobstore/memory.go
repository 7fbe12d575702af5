// ABOUTME: In-memory Store implementation for tests and storage-unavailable fallback
// ABOUTME: Map-backed, thread-safe, never fails

package blobstore

import "sync"

// MemoryStore is a map-backed Store. It is the fallback when no durable
// storage is available, and the standard test double.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]string)}
}

// Load returns the blob stored under key
func (m *MemoryStore) Load(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.blobs[key]
	return value, ok
}

// Save stores value under key
func (m *MemoryStore) Save(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = value
}

// Remove deletes the blob stored under key
func (m *MemoryStore) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, key)
}
