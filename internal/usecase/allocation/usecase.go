package allocation

import (
	"context"
	"errors"
	"log"
	"time"

	"profitshare-backend/internal/domain/investor"
	"profitshare-backend/internal/domain/order"
	"profitshare-backend/internal/domain/reference"
	"profitshare-backend/internal/domain/rotation"
	"profitshare-backend/internal/domain/uow"
	"profitshare-backend/pkg/profitcalc"

	"gorm.io/gorm"
)

// A delivery can churn through at most this many candidates before the
// attempt is abandoned and the order stays pending.
const maxFinalizeAttempts = 50

type Usecase struct {
	investors  investor.Repository
	orders     order.Repository
	references reference.Repository
	cursors    rotation.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(investors investor.Repository, orders order.Repository,
	references reference.Repository, cursors rotation.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{
		investors:  investors,
		orders:     orders,
		references: references,
		cursors:    cursors,
		uow:        tx,
	}
}

type PreAssignSummary struct {
	InvestorID       string  `json:"investor_id"`
	InvestorName     string  `json:"investor_name"`
	ProfitPercentage float64 `json:"profit_percentage"`
	ExpectedProfit   float64 `json:"expected_profit"`
}

type FinalizeSummary struct {
	InvestorID         string          `json:"investor_id"`
	InvestorName       string          `json:"investor_name"`
	Status             investor.Status `json:"status"`
	GrossProfit        float64         `json:"gross_profit"`
	ReferenceDeduction float64         `json:"reference_deduction"`
	NetProfit          float64         `json:"net_profit"`
	EarnedProfit       float64         `json:"earned_profit"`
	TotalReturn        float64         `json:"total_return"`
}

// PreAssign picks the next investor in the owner's rotation and writes a
// pending assignment onto ord; the caller persists the order. A nil return
// means no profit was assigned this time — no eligible investor, no capacity
// under the target, or a storage failure (logged). Allocation is a side
// channel of order creation and must never fail it.
func (u *Usecase) PreAssign(ctx context.Context, ord *order.Order, ownerID string, orderTotal float64) *PreAssignSummary {
	s, err := u.preAssign(ctx, ord, ownerID, orderTotal)
	if err != nil {
		if !errors.Is(err, ErrExhausted) && !errors.Is(err, investor.ErrNoCapacity) {
			log.Printf("allocation: preassign order=%s owner=%s: %v", ord.OrderID, ownerID, err)
		}
		return nil
	}
	return s
}

func (u *Usecase) preAssign(ctx context.Context, ord *order.Order, ownerID string, orderTotal float64) (*PreAssignSummary, error) {
	inv, err := pickNext(ctx, u.investors, u.cursors, ownerID, nil)
	if err != nil {
		return nil, err
	}

	// capped by target only; referral deduction waits until delivery
	expected := profitcalc.ExpectedProfit(orderTotal, inv.ProfitPercentage)
	expected = profitcalc.CapByTarget(expected, inv.ProfitAmount, inv.EarnedProfit)
	if expected <= 0 {
		return nil, investor.ErrNoCapacity
	}

	ord.InvestorProfit = &order.Assignment{
		InvestorID:       inv.InvestorID,
		InvestorName:     inv.Name,
		ProfitPercentage: inv.ProfitPercentage,
		ProfitAmount:     expected,
		IsPending:        true,
		AssignedAt:       time.Now().UTC(),
	}
	return &PreAssignSummary{
		InvestorID:       inv.InvestorID,
		InvestorName:     inv.Name,
		ProfitPercentage: inv.ProfitPercentage,
		ExpectedProfit:   expected,
	}, nil
}

// Finalize settles the order's profit assignment at delivery. It re-validates
// the pre-assigned investor (or selects a fresh one), grosses the amount up
// for referral commissions, credits the partners and the investor, and flips
// the assignment to non-pending exactly once. A nil return means no profit
// was finalized: already finalized, no eligible investor left, retry budget
// exhausted, or a storage failure (logged). Callers may retry later while
// the assignment is still pending.
func (u *Usecase) Finalize(ctx context.Context, orderID, ownerID string) *FinalizeSummary {
	s, err := u.finalize(ctx, orderID, ownerID)
	if err != nil {
		log.Printf("allocation: finalize order=%s owner=%s: %v", orderID, ownerID, err)
		return nil
	}
	return s
}

func (u *Usecase) finalize(ctx context.Context, orderID, ownerID string) (*FinalizeSummary, error) {
	var out *FinalizeSummary
	err := u.uow.WithinOrderTx(ctx, orderID, func(r uow.Repos, ord *order.Order) error {
		// at most one finalization per order
		if ord.HasAssignment() && !ord.InvestorProfit.IsPending {
			return nil
		}

		refs, err := r.References.ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		partners := make([]*reference.Reference, 0, len(refs))
		var totalRate float64
		for _, ref := range refs {
			if ref.ProfitRate > 0 {
				partners = append(partners, ref)
				totalRate += ref.ProfitRate
			}
		}

		excluded := make(map[string]bool)
		for attempt := 0; attempt < maxFinalizeAttempts; attempt++ {
			inv, err := u.candidate(ctx, r, ord, ownerID, excluded)
			if errors.Is(err, ErrExhausted) {
				// commit anyway: commissions already written stay written
				return nil
			}
			if err != nil {
				return err
			}

			if inv.Status != investor.StatusActive || inv.ProfitPercentage <= 0 {
				excluded[inv.InvestorID] = true
				continue
			}

			var remaining float64
			if inv.HasTarget() {
				remaining = profitcalc.Round2(inv.ProfitAmount - inv.EarnedProfit)
				if remaining <= 0 {
					if err := r.Investors.MarkCompleted(ctx, inv.InvestorID); err != nil {
						return err
					}
					excluded[inv.InvestorID] = true
					continue
				}
			}

			// the pre-assigned figure carries over only for the same investor
			amount := profitcalc.ExpectedProfit(ord.Total, inv.ProfitPercentage)
			ip := ord.InvestorProfit
			if ord.HasAssignment() && ip.InvestorID == inv.InvestorID && ip.ProfitAmount > 0 {
				amount = ip.ProfitAmount
			}

			adjusted := amount
			if inv.HasTarget() {
				adjusted = profitcalc.GrossUpForReferrals(amount, remaining, totalRate)
			}
			if adjusted <= 0 {
				excluded[inv.InvestorID] = true
				continue
			}

			// Commissions are persisted as soon as computed, before the
			// investor is credited. If this candidate is abandoned below they
			// are NOT reversed; reversing changes partner-facing balances and
			// needs product sign-off (see DESIGN.md).
			var deduction float64
			for _, p := range partners {
				c := profitcalc.Commission(adjusted, p.ProfitRate)
				if c <= 0 {
					continue
				}
				if err := r.References.AddCommission(ctx, p.ReferenceID, c); err != nil {
					return err
				}
				deduction = profitcalc.Round2(deduction + c)
			}

			net := profitcalc.Round2(adjusted - deduction)
			if net <= 0 {
				excluded[inv.InvestorID] = true
				continue
			}

			if err := r.Investors.CreditEarnings(ctx, inv.InvestorID, net); err != nil {
				if errors.Is(err, investor.ErrNoCapacity) {
					excluded[inv.InvestorID] = true
					continue
				}
				return err
			}

			assignedAt := time.Now().UTC()
			if ip != nil && !ip.AssignedAt.IsZero() {
				assignedAt = ip.AssignedAt
			}
			ord.InvestorProfit = &order.Assignment{
				InvestorID:       inv.InvestorID,
				InvestorName:     inv.Name,
				ProfitPercentage: inv.ProfitPercentage,
				ProfitAmount:     adjusted,
				IsPending:        false,
				AssignedAt:       assignedAt,
			}
			if err := r.Orders.Save(ctx, ord); err != nil {
				return err
			}

			credited, err := r.Investors.GetByInvestorID(ctx, inv.InvestorID)
			if err != nil {
				return err
			}
			out = &FinalizeSummary{
				InvestorID:         credited.InvestorID,
				InvestorName:       credited.Name,
				Status:             credited.Status,
				GrossProfit:        adjusted,
				ReferenceDeduction: deduction,
				NetProfit:          net,
				EarnedProfit:       credited.EarnedProfit,
				TotalReturn:        credited.TotalReturn,
			}
			return nil
		}
		// retry budget consumed; the order stays pending for a later retry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// candidate resolves the next investor to try: the pre-assigned one while it
// is still usable, otherwise the next pick of the rotation.
func (u *Usecase) candidate(ctx context.Context, r uow.Repos, ord *order.Order,
	ownerID string, excluded map[string]bool) (*investor.Investor, error) {

	if ip := ord.InvestorProfit; ord.HasAssignment() && !excluded[ip.InvestorID] {
		inv, err := r.Investors.GetByInvestorID(ctx, ip.InvestorID)
		if err == nil {
			return inv, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// pre-assigned investor vanished; fall through to the rotation
		excluded[ip.InvestorID] = true
	}
	return pickNext(ctx, r.Investors, r.Cursors, ownerID, excluded)
}
