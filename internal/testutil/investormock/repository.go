package investormock

import (
	"context"

	domain "profitshare-backend/internal/domain/investor"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies investor.Repository.
// Fill in the function fields a test needs; unfilled lookups fail loudly.
type Repo struct {
	CreateFn            func(ctx context.Context, inv *domain.Investor) error
	GetByInvestorIDFn   func(ctx context.Context, investorID string) (*domain.Investor, error)
	ListActiveByOwnerFn func(ctx context.Context, ownerID string) ([]*domain.Investor, error)
	SaveFn              func(ctx context.Context, inv *domain.Investor) error
	CreditEarningsFn    func(ctx context.Context, investorID string, net float64) error
	MarkCompletedFn     func(ctx context.Context, investorID string) error
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investor) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByInvestorID(ctx context.Context, investorID string) (*domain.Investor, error) {
	if m.GetByInvestorIDFn != nil {
		return m.GetByInvestorIDFn(ctx, investorID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActiveByOwner(ctx context.Context, ownerID string) ([]*domain.Investor, error) {
	if m.ListActiveByOwnerFn != nil {
		return m.ListActiveByOwnerFn(ctx, ownerID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, inv *domain.Investor) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}

func (m *Repo) CreditEarnings(ctx context.Context, investorID string, net float64) error {
	if m.CreditEarningsFn != nil {
		return m.CreditEarningsFn(ctx, investorID, net)
	}
	return nil
}

func (m *Repo) MarkCompleted(ctx context.Context, investorID string) error {
	if m.MarkCompletedFn != nil {
		return m.MarkCompletedFn(ctx, investorID)
	}
	return nil
}
