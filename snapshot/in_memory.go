package snapshot

import (
	cmap "github.com/orcaman/concurrent-map/v2"
)

// MemoryKV is a volatile core.KV backed by a sharded concurrent map. It is
// best suited for tests and single-run hosts; it does not survive a process
// restart, so a host that must honor mid-session restarts supplies a durable
// implementation instead.
type MemoryKV struct {
	entries cmap.ConcurrentMap[string, string]
}

// NewMemoryKV constructs an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: cmap.New[string]()}
}

// Get returns the stored value and whether the key exists.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	value, ok := m.entries.Get(key)
	return value, ok, nil
}

// Set stores (or overwrites) the value for the key.
func (m *MemoryKV) Set(key, value string) error {
	m.entries.Set(key, value)
	return nil
}

// Erase removes the key if present.
func (m *MemoryKV) Erase(key string) error {
	m.entries.Remove(key)
	return nil
}

// Len returns the number of stored entries.
func (m *MemoryKV) Len() int {
	return m.entries.Count()
}
