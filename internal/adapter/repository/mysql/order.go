package mysql

import (
	"context"

	orderDomain "profitshare-backend/internal/domain/order"

	"gorm.io/gorm"
)

type OrderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{db: db} }

func (r *OrderRepository) Create(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) Save(ctx context.Context, o *orderDomain.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OrderRepository) GetByOrderID(ctx context.Context, orderID string) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&out)
	return &out, res.Error
}

func (r *OrderRepository) GetByOrderIDForUpdate(ctx context.Context, orderID string) (*orderDomain.Order, error) {
	var out orderDomain.Order
	res := lockForUpdate(r.db.WithContext(ctx)).Where("order_id = ?", orderID).First(&out)
	return &out, res.Error
}

func (r *OrderRepository) StatsByInvestor(ctx context.Context, investorID string) (*orderDomain.InvestorStats, error) {
	var st orderDomain.InvestorStats
	res := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total_orders,
		       COALESCE(SUM(CASE WHEN status = 'delivered' THEN 1 ELSE 0 END), 0) AS delivered_orders,
		       COALESCE(SUM(CASE WHEN status = 'delivered' AND ip_is_pending = ? THEN ip_profit_amount ELSE 0 END), 0) AS total_profit,
		       COALESCE(SUM(CASE WHEN ip_is_pending = ? THEN ip_profit_amount ELSE 0 END), 0) AS pending_profit
		  FROM orders
		 WHERE ip_investor_id = ? AND deleted_at IS NULL`,
		false, true, investorID,
	).Scan(&st)
	if res.Error != nil {
		return nil, res.Error
	}
	return &st, nil
}

func (r *OrderRepository) ListRecentByInvestor(ctx context.Context, investorID string, limit int) ([]*orderDomain.Order, error) {
	var out []*orderDomain.Order
	res := r.db.WithContext(ctx).
		Where("ip_investor_id = ?", investorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}
