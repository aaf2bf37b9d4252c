package mysql

import (
	"context"

	referenceDomain "profitshare-backend/internal/domain/reference"

	"gorm.io/gorm"
)

type ReferenceRepository struct{ db *gorm.DB }

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository { return &ReferenceRepository{db: db} }

func (r *ReferenceRepository) Create(ctx context.Context, ref *referenceDomain.Reference) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *ReferenceRepository) GetByReferenceID(ctx context.Context, referenceID string) (*referenceDomain.Reference, error) {
	var out referenceDomain.Reference
	res := r.db.WithContext(ctx).Where("reference_id = ?", referenceID).First(&out)
	return &out, res.Error
}

func (r *ReferenceRepository) ListByOwner(ctx context.Context, ownerID string) ([]*referenceDomain.Reference, error) {
	var out []*referenceDomain.Reference
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

// AddCommission bumps both cumulative counters in one UPDATE so partner
// balances stay consistent with each other whatever the caller does next.
func (r *ReferenceRepository) AddCommission(ctx context.Context, referenceID string, amount float64) error {
	res := r.db.WithContext(ctx).
		Model(&referenceDomain.Reference{}).
		Where("reference_id = ?", referenceID).
		Updates(map[string]any{
			"total_profit":   gorm.Expr("total_profit + ?", amount),
			"pending_amount": gorm.Expr("pending_amount + ?", amount),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return referenceDomain.ErrNotFound
	}
	return nil
}
