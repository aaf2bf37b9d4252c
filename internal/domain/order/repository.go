package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByOrderID(ctx context.Context, orderID string) (*Order, error)
	// GetByOrderIDForUpdate locks the order row for the rest of the
	// surrounding transaction; finalize runs behind this lock.
	GetByOrderIDForUpdate(ctx context.Context, orderID string) (*Order, error)
	Save(ctx context.Context, o *Order) error

	// StatsByInvestor aggregates over every order assigned to the investor:
	// order counts, realized (finalized, delivered) profit and still-pending
	// profit.
	StatsByInvestor(ctx context.Context, investorID string) (*InvestorStats, error)
	// ListRecentByInvestor returns the most recently created orders assigned
	// to the investor, newest first, at most limit.
	ListRecentByInvestor(ctx context.Context, investorID string, limit int) ([]*Order, error)
}
