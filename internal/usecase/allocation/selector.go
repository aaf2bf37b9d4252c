package allocation

import (
	"context"
	"errors"

	"profitshare-backend/internal/domain/investor"
	"profitshare-backend/internal/domain/rotation"
)

// ErrExhausted tags the "no eligible investor remains" outcome of a
// selection attempt. It is a skip, not a failure: callers translate it to a
// "none" result.
var ErrExhausted = errors.New("no eligible investor remains")

// eligible applies the engine's rules on top of the repository's base query
// (active, owned, creation-ascending): a positive percentage, and when a
// positive target is set, some capacity left under it.
func eligible(invs []*investor.Investor) []*investor.Investor {
	out := make([]*investor.Investor, 0, len(invs))
	for _, inv := range invs {
		if inv.ProfitPercentage <= 0 {
			continue
		}
		if inv.HasTarget() && inv.EarnedProfit >= inv.ProfitAmount {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// pickNext recomputes the eligible pool, drops excluded ids and advances the
// owner's rotation cursor against the pool's current length. Fairness is
// best-effort across callers; monetary correctness never depends on it.
func pickNext(ctx context.Context, investors investor.Repository, cursors rotation.Repository,
	ownerID string, excluded map[string]bool) (*investor.Investor, error) {

	invs, err := investors.ListActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	pool := make([]*investor.Investor, 0, len(invs))
	for _, inv := range eligible(invs) {
		if !excluded[inv.InvestorID] {
			pool = append(pool, inv)
		}
	}
	if len(pool) == 0 {
		return nil, ErrExhausted
	}
	next, err := cursors.Advance(ctx, ownerID, len(pool))
	if err != nil {
		return nil, err
	}
	return pool[next], nil
}
