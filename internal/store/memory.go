package store

import "sync"

// Memory is an in-memory KV used by tests.
type Memory struct {
	mu     sync.Mutex
	values map[string]string

	// SetCount tracks writes per key, so tests can assert that an
	// operation caused no spurious persistence.
	SetCount map[string]int
}

func NewMemory() *Memory {
	return &Memory{
		values:   make(map[string]string),
		SetCount: make(map[string]int),
	}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.SetCount[key]++
	return nil
}

func (m *Memory) Close() error {
	return nil
}
