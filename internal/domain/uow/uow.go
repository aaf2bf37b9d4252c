package uow

import (
	"context"

	"profitshare-backend/internal/domain/investor"
	"profitshare-backend/internal/domain/order"
	"profitshare-backend/internal/domain/reference"
	"profitshare-backend/internal/domain/rotation"
)

type Repos struct {
	Investors  investor.Repository
	Orders     order.Repository
	References reference.Repository
	Cursors    rotation.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the order row first, then pass it in
	WithinOrderTx(ctx context.Context, orderID string, fn func(r Repos, o *order.Order) error) error
}
