package storage

import (
	"context"
	"sync"
)

// Memory is a map-backed Blobs implementation for tests and ephemeral runs.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewMemory returns an empty in-memory blob store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]string)}
}

// Get returns the blob stored under key, if any.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.blobs[key]
	return v, ok, nil
}

// Set stores value under key, replacing any previous blob.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = value
	return nil
}
