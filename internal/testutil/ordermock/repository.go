package ordermock

import (
	"context"

	domain "profitshare-backend/internal/domain/order"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies order.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, o *domain.Order) error
	GetByOrderIDFn          func(ctx context.Context, orderID string) (*domain.Order, error)
	GetByOrderIDForUpdateFn func(ctx context.Context, orderID string) (*domain.Order, error)
	SaveFn                  func(ctx context.Context, o *domain.Order) error
	StatsByInvestorFn       func(ctx context.Context, investorID string) (*domain.InvestorStats, error)
	ListRecentByInvestorFn  func(ctx context.Context, investorID string, limit int) ([]*domain.Order, error)
}

func (m *Repo) Create(ctx context.Context, o *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	if m.GetByOrderIDFn != nil {
		return m.GetByOrderIDFn(ctx, orderID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByOrderIDForUpdate(ctx context.Context, orderID string) (*domain.Order, error) {
	if m.GetByOrderIDForUpdateFn != nil {
		return m.GetByOrderIDForUpdateFn(ctx, orderID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, o *domain.Order) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}

func (m *Repo) StatsByInvestor(ctx context.Context, investorID string) (*domain.InvestorStats, error) {
	if m.StatsByInvestorFn != nil {
		return m.StatsByInvestorFn(ctx, investorID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListRecentByInvestor(ctx context.Context, investorID string, limit int) ([]*domain.Order, error) {
	if m.ListRecentByInvestorFn != nil {
		return m.ListRecentByInvestorFn(ctx, investorID, limit)
	}
	return nil, context.Canceled
}
