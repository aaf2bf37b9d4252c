package reference

import "context"

type Repository interface {
	Create(ctx context.Context, ref *Reference) error
	GetByReferenceID(ctx context.Context, referenceID string) (*Reference, error)
	// ListByOwner returns all of the owner's reference partners, creation
	// ascending. Rate filtering is the caller's business rule.
	ListByOwner(ctx context.Context, ownerID string) ([]*Reference, error)
	// AddCommission increments total_profit and pending_amount in a single
	// UPDATE. Commissions are persisted the moment they are computed.
	AddCommission(ctx context.Context, referenceID string, amount float64) error
}
