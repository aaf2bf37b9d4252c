package stats

import (
	"context"
	"encoding/json"
	"time"

	"profitshare-backend/internal/domain/investor"
	"profitshare-backend/internal/domain/order"

	"github.com/redis/go-redis/v9"
)

const recentOrdersLimit = 10

type Usecase struct {
	investors investor.Repository
	orders    order.Repository
	cache     *redis.Client // optional; nil disables caching
	cacheTTL  time.Duration
}

func NewUsecase(investors investor.Repository, orders order.Repository, cache *redis.Client, cacheTTL time.Duration) *Usecase {
	return &Usecase{investors: investors, orders: orders, cache: cache, cacheTTL: cacheTTL}
}

type OrderSummary struct {
	OrderID      string    `json:"order_id"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	ProfitAmount float64   `json:"profit_amount"`
	IsPending    bool      `json:"is_pending"`
	CreatedAt    time.Time `json:"created_at"`
}

type StatsDTO struct {
	InvestorID       string         `json:"investor_id"`
	InvestorName     string         `json:"investor_name"`
	Status           string         `json:"status"`
	ProfitPercentage float64        `json:"profit_percentage"`
	ProfitAmount     float64        `json:"profit_amount"`
	EarnedProfit     float64        `json:"earned_profit"`
	InvestmentAmount float64        `json:"investment_amount"`
	TotalReturn      float64        `json:"total_return"`
	TotalOrders      int64          `json:"total_orders"`
	DeliveredOrders  int64          `json:"delivered_orders"`
	TotalProfit      float64        `json:"total_profit"`
	PendingProfit    float64        `json:"pending_profit"`
	RecentOrders     []OrderSummary `json:"recent_orders"`
}

func cacheKey(investorID string) string { return "stats:investor:" + investorID }

// Get serves the read-only aggregates for one investor. The cache is
// best-effort: any redis hiccup falls through to the database.
func (u *Usecase) Get(ctx context.Context, investorID string) (*StatsDTO, error) {
	if u.cache != nil {
		if b, err := u.cache.Get(ctx, cacheKey(investorID)).Bytes(); err == nil {
			var dto StatsDTO
			if json.Unmarshal(b, &dto) == nil {
				return &dto, nil
			}
		}
	}

	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	st, err := u.orders.StatsByInvestor(ctx, investorID)
	if err != nil {
		return nil, err
	}
	recent, err := u.orders.ListRecentByInvestor(ctx, investorID, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	dto := &StatsDTO{
		InvestorID:       inv.InvestorID,
		InvestorName:     inv.Name,
		Status:           string(inv.Status),
		ProfitPercentage: inv.ProfitPercentage,
		ProfitAmount:     inv.ProfitAmount,
		EarnedProfit:     inv.EarnedProfit,
		InvestmentAmount: inv.InvestmentAmount,
		TotalReturn:      inv.TotalReturn,
		TotalOrders:      st.TotalOrders,
		DeliveredOrders:  st.DeliveredOrders,
		TotalProfit:      st.TotalProfit,
		PendingProfit:    st.PendingProfit,
		RecentOrders:     make([]OrderSummary, 0, len(recent)),
	}
	for _, o := range recent {
		s := OrderSummary{
			OrderID:   o.OrderID,
			Status:    string(o.Status),
			Total:     o.Total,
			CreatedAt: o.CreatedAt,
		}
		if o.InvestorProfit != nil {
			s.ProfitAmount = o.InvestorProfit.ProfitAmount
			s.IsPending = o.InvestorProfit.IsPending
		}
		dto.RecentOrders = append(dto.RecentOrders, s)
	}

	if u.cache != nil && u.cacheTTL > 0 {
		if b, err := json.Marshal(dto); err == nil {
			_ = u.cache.Set(ctx, cacheKey(investorID), b, u.cacheTTL).Err()
		}
	}
	return dto, nil
}
