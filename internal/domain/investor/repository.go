package investor

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investor) error
	GetByInvestorID(ctx context.Context, investorID string) (*Investor, error)
	// ListActiveByOwner returns the owner's active investors ordered by
	// creation time ascending. Stable order is required: the round-robin
	// cursor indexes into this list.
	ListActiveByOwner(ctx context.Context, ownerID string) ([]*Investor, error)
	Save(ctx context.Context, inv *Investor) error
	// CreditEarnings adds net to earned_profit in a single conditional
	// UPDATE: it recomputes total_return, flips status to completed when the
	// target is reached, and refuses with ErrNoCapacity when the row is not
	// active or the increment would overshoot a positive target.
	CreditEarnings(ctx context.Context, investorID string, net float64) error
	// MarkCompleted transitions an active investor to completed (terminal).
	MarkCompleted(ctx context.Context, investorID string) error
}
