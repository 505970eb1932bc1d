// Package store holds the persistence side of the task list: a single
// slot that is read once at startup and overwritten after every change.
package store

import (
	"context"
	"sync"
)

// Slot is one well-known storage location for the serialized task list.
// Load reports found=false on first run; that is not an error.
type Slot interface {
	Load(ctx context.Context) (data []byte, found bool, err error)
	Save(ctx context.Context, data []byte) error
	Close() error
}

// Memory is a process-local Slot, used for --backend memory and in tests.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemory returns a slot preloaded with data; nil means nothing saved yet.
func NewMemory(data []byte) *Memory {
	m := &Memory{}
	if data != nil {
		m.data = append([]byte(nil), data...)
	}
	return m
}

func (m *Memory) Load(context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte{}, data...)
	m.saves++
	return nil
}

func (m *Memory) Close() error { return nil }

// Bytes returns a copy of the last saved payload.
func (m *Memory) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

// Saves counts Save calls.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
