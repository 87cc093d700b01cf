package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store backed by a map. It is the substitute
// store for tests and works for ephemeral runs where durability does not
// matter.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// Compile-time check: *Memory satisfies Store.
var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value at key, reporting absence via ok.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Put stores value at key, overwriting any existing value.
func (m *Memory) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete removes key; absent keys are a no-op.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error { return nil }

// Snapshot returns a copy of all stored pairs. Tests use it to assert
// which keys an operation did (or did not) write.
func (m *Memory) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out
}
