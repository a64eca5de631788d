// internal/app/store/snapshot/memory.go
package snapshot

import (
	"context"
	"sync"
)

// Memory is a Backend that keeps the blob in process memory. It is the
// default for tests and throwaway runs; state is lost on exit.
type Memory struct {
	mu   sync.Mutex
	blob []byte
	set  bool
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, false, nil
	}
	out := make([]byte, len(m.blob))
	copy(out, m.blob)
	return out, true, nil
}

func (m *Memory) Store(ctx context.Context, b []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = make([]byte, len(b))
	copy(m.blob, b)
	m.set = true
	return nil
}

func (m *Memory) Close(ctx context.Context) error { return nil }
