// Package checkpoint records which components a batch has already
// generated so an interrupted run can be retried without regenerating
// finished work. Entries are keyed by component name and carry the
// spec-content hash: editing a spec invalidates its checkpoint.
package checkpoint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Store persists per-component completion marks.
type Store interface {
	// Done reports whether the component was already generated from a
	// spec with the given hash.
	Done(ctx context.Context, component, hash string) (bool, error)

	// Mark records a completed generation.
	Mark(ctx context.Context, component, hash string) error

	// Reset forgets a component's mark.
	Reset(ctx context.Context, component string) error

	Close() error
}

// Hash returns the checkpoint hash of a raw spec document.
func Hash(spec []byte) string {
	sum := sha256.Sum256(spec)
	return hex.EncodeToString(sum[:])
}

// MemoryStore keeps marks in process memory. Useful for tests and for
// single-shot runs where retry durability is not wanted.
type MemoryStore struct {
	mu    sync.Mutex
	marks map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{marks: make(map[string]string)}
}

func (s *MemoryStore) Done(_ context.Context, component, hash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marks[component] == hash, nil
}

func (s *MemoryStore) Mark(_ context.Context, component, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[component] = hash
	return nil
}

func (s *MemoryStore) Reset(_ context.Context, component string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.marks, component)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
