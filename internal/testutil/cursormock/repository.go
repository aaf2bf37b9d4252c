package cursormock

import (
	"context"
	"sync"

	domain "profitshare-backend/internal/domain/rotation"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies rotation.Repository. When
// AdvanceFn is left nil it falls back to a real in-memory cursor per owner,
// which is what most selection tests want.
type Repo struct {
	AdvanceFn func(ctx context.Context, ownerID string, length int) (int, error)
	GetFn     func(ctx context.Context, ownerID string) (*domain.Cursor, error)

	mu   sync.Mutex
	last map[string]int
}

func (m *Repo) Advance(ctx context.Context, ownerID string, length int) (int, error) {
	if m.AdvanceFn != nil {
		return m.AdvanceFn(ctx, ownerID, length)
	}
	if length <= 0 {
		return 0, domain.ErrEmptyRotation
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		m.last = map[string]int{}
	}
	last, ok := m.last[ownerID]
	if !ok {
		last = -1
	}
	next := (last + 1) % length
	m.last[ownerID] = next
	return next, nil
}

func (m *Repo) Get(ctx context.Context, ownerID string) (*domain.Cursor, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, ownerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	last, ok := m.last[ownerID]
	if !ok {
		return nil, context.Canceled
	}
	return &domain.Cursor{OwnerID: ownerID, LastIndex: last}, nil
}
