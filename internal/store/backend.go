package store

import "sync"

// Backend persists the whole dataset as one opaque document. Load reports
// whether a document exists at all, so a fresh backend can be told apart
// from an empty one.
type Backend interface {
	Load() ([]byte, bool, error)
	Save(data []byte) error
}

// MemoryBackend keeps the document in process memory. Used by tests and
// throwaway runs; nothing survives a restart.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load() ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, false, nil
	}
	cp := make([]byte, len(b.data))
	copy(cp, b.data)
	return cp, true, nil
}

func (b *MemoryBackend) Save(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	b.data = cp
	return nil
}
