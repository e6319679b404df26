package store

import (
	"encoding/json"
	"sync"
)

// Memory is an in-process Store for tests and ephemeral sessions. It keeps
// the marshalled payload so Load shares the absent semantics of the sqlite
// implementation.
type Memory struct {
	mu  sync.RWMutex
	raw []byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.raw == nil {
		return nil, nil
	}
	var doc Document
	if err := json.Unmarshal(m.raw, &doc); err != nil {
		return nil, nil
	}
	if doc.Version != DocumentVersion {
		return nil, nil
	}
	return &doc, nil
}

func (m *Memory) Save(doc *Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = raw
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = nil
	return nil
}

func (m *Memory) Close() error { return nil }
