package payment

import (
	"context"
	"sync"
)

// Store keeps finalized payments by ID.
type Store interface {
	// Put inserts the payment or overwrites the one stored under the same ID.
	Put(ctx context.Context, p *Payment) error

	// Get returns ErrPaymentNotFound when no payment exists for id.
	Get(ctx context.Context, id string) (*Payment, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	payments map[string]*Payment
}

// NewMemoryStore returns a process-lifetime Store. Records are copied on the
// way in and out so callers can never mutate a stored payment.
func NewMemoryStore() Store {
	return &memoryStore{payments: make(map[string]*Payment)}
}

func (s *memoryStore) Put(_ context.Context, p *Payment) error {
	cloned := p.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments[cloned.ID] = &cloned
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}

	cloned := item.Clone()
	return &cloned, nil
}
