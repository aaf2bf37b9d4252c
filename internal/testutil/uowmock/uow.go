package uowmock

import (
	"context"
	"errors"

	"profitshare-backend/internal/domain/order"
	"profitshare-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. The zero
// value with Repos set behaves like a pass-through "transaction": fn runs
// against Repos directly, and WithinOrderTx resolves the order through
// Repos.Orders.
type UoW struct {
	Repos uow.Repos

	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinOrderTxFn func(ctx context.Context, orderID string, fn func(r uow.Repos, o *order.Order) error) error
}

func New(r uow.Repos) *UoW { return &UoW{Repos: r} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	if m.Repos == (uow.Repos{}) {
		return errUnimplemented
	}
	return fn(m.Repos)
}

func (m *UoW) WithinOrderTx(ctx context.Context, orderID string, fn func(r uow.Repos, o *order.Order) error) error {
	if m.WithinOrderTxFn != nil {
		return m.WithinOrderTxFn(ctx, orderID, fn)
	}
	if m.Repos == (uow.Repos{}) || m.Repos.Orders == nil {
		return errUnimplemented
	}
	o, err := m.Repos.Orders.GetByOrderIDForUpdate(ctx, orderID)
	if err != nil {
		return err
	}
	return fn(m.Repos, o)
}
