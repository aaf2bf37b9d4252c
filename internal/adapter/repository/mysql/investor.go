package mysql

import (
	"context"
	"time"

	investorDomain "profitshare-backend/internal/domain/investor"

	"gorm.io/gorm"
)

// Completion and capacity checks allow half a cent of slack so 2dp rounding
// on either side cannot wedge an investor just below the target.
const creditEpsilon = 0.005

type InvestorRepository struct{ db *gorm.DB }

func NewInvestorRepository(db *gorm.DB) *InvestorRepository { return &InvestorRepository{db: db} }

func (r *InvestorRepository) Create(ctx context.Context, inv *investorDomain.Investor) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestorRepository) Save(ctx context.Context, inv *investorDomain.Investor) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *InvestorRepository) GetByInvestorID(ctx context.Context, investorID string) (*investorDomain.Investor, error) {
	var out investorDomain.Investor
	res := r.db.WithContext(ctx).Where("investor_id = ?", investorID).First(&out)
	return &out, res.Error
}

func (r *InvestorRepository) ListActiveByOwner(ctx context.Context, ownerID string) ([]*investorDomain.Investor, error) {
	var out []*investorDomain.Investor
	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, investorDomain.StatusActive).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

// CreditEarnings applies the earnings increment as one conditional UPDATE.
// A plain fetch-compute-save here would be a lost-update race: two
// concurrent finalizations of the same investor could both pass an in-memory
// capacity check and overshoot the target together. The WHERE clause refuses
// the row when status is no longer active or the increment does not fit a
// positive target; zero affected rows surfaces as ErrNoCapacity.
//
// MySQL applies single-table SET assignments left to right and later
// expressions read the already-updated values, so earned_profit MUST stay
// the last assignment: total_return and the status CASE read the original
// earned_profit. Do not reorder.
func (r *InvestorRepository) CreditEarnings(ctx context.Context, investorID string, net float64) error {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE investors
		   SET total_return  = investment_amount + earned_profit + ?,
		       status        = CASE
		                         WHEN profit_amount > 0 AND earned_profit + ? >= profit_amount - ?
		                         THEN 'completed' ELSE status
		                       END,
		       updated_at    = ?,
		       earned_profit = earned_profit + ?
		 WHERE investor_id = ?
		   AND deleted_at IS NULL
		   AND status = 'active'
		   AND (profit_amount <= 0 OR earned_profit + ? <= profit_amount + ?)`,
		net, net, creditEpsilon,
		time.Now().UTC(),
		net,
		investorID,
		net, creditEpsilon,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return investorDomain.ErrNoCapacity
	}
	return nil
}

func (r *InvestorRepository) MarkCompleted(ctx context.Context, investorID string) error {
	res := r.db.WithContext(ctx).
		Model(&investorDomain.Investor{}).
		Where("investor_id = ? AND status = ?", investorID, investorDomain.StatusActive).
		Update("status", investorDomain.StatusCompleted)
	if res.Error != nil {
		return res.Error
	}
	// already completed is fine: the transition is terminal and idempotent
	return nil
}
