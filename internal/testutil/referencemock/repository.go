package referencemock

import (
	"context"

	domain "profitshare-backend/internal/domain/reference"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies reference.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, ref *domain.Reference) error
	GetByReferenceIDFn func(ctx context.Context, referenceID string) (*domain.Reference, error)
	ListByOwnerFn      func(ctx context.Context, ownerID string) ([]*domain.Reference, error)
	AddCommissionFn    func(ctx context.Context, referenceID string, amount float64) error
}

func (m *Repo) Create(ctx context.Context, ref *domain.Reference) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ref)
	}
	return nil
}

func (m *Repo) GetByReferenceID(ctx context.Context, referenceID string) (*domain.Reference, error) {
	if m.GetByReferenceIDFn != nil {
		return m.GetByReferenceIDFn(ctx, referenceID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Reference, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	return []*domain.Reference{}, nil
}

func (m *Repo) AddCommission(ctx context.Context, referenceID string, amount float64) error {
	if m.AddCommissionFn != nil {
		return m.AddCommissionFn(ctx, referenceID, amount)
	}
	return nil
}
