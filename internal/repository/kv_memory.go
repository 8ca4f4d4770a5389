package repository

import (
	"context"
	"sync"
)

var _ KV = &KVMemory{}

// KVMemory is an in-process KV substrate used in tests and anywhere a
// durable engine is not wanted.
type KVMemory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewKVMemory() *KVMemory {
	return &KVMemory{entries: make(map[string][]byte)}
}

func (m *KVMemory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (m *KVMemory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	m.entries[key] = cp
	return nil
}
