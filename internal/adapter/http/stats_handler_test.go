package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	investordomain "profitshare-backend/internal/domain/investor"
	orderdomain "profitshare-backend/internal/domain/order"
	"profitshare-backend/internal/testutil/investormock"
	"profitshare-backend/internal/testutil/ordermock"
	"profitshare-backend/internal/usecase/stats"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func getStatsCtx(t *testing.T, investorID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(stdhttp.MethodGet, "/investors/"+investorID+"/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("investor_id")
	c.SetParamValues(investorID)
	return c, rec
}

func TestGetInvestorStats_Success(t *testing.T) {
	investors := &investormock.Repo{
		GetByInvestorIDFn: func(ctx context.Context, investorID string) (*investordomain.Investor, error) {
			return &investordomain.Investor{
				InvestorID:       investorID,
				Name:             "Ayu",
				Status:           investordomain.StatusActive,
				ProfitPercentage: 10,
				EarnedProfit:     50,
			}, nil
		},
	}
	orders := &ordermock.Repo{
		StatsByInvestorFn: func(ctx context.Context, investorID string) (*orderdomain.InvestorStats, error) {
			return &orderdomain.InvestorStats{TotalOrders: 3, DeliveredOrders: 2, TotalProfit: 50, PendingProfit: 33.5}, nil
		},
		ListRecentByInvestorFn: func(ctx context.Context, investorID string, limit int) ([]*orderdomain.Order, error) {
			return []*orderdomain.Order{{
				OrderID: testOrderID, Total: 500, Status: orderdomain.StatusDelivered,
				InvestorProfit: &orderdomain.Assignment{InvestorID: investorID, ProfitAmount: 40, AssignedAt: time.Now().UTC()},
			}}, nil
		},
	}
	h := NewStatsHandler(stats.NewUsecase(investors, orders, nil, 0))

	c, rec := getStatsCtx(t, testInvestorID)
	if err := h.GetInvestorStats(c); err != nil {
		t.Fatalf("GetInvestorStats error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var dto stats.StatsDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.InvestorID != testInvestorID || dto.TotalOrders != 3 || dto.PendingProfit != 33.5 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if len(dto.RecentOrders) != 1 || dto.RecentOrders[0].ProfitAmount != 40 {
		t.Fatalf("unexpected recent orders: %+v", dto.RecentOrders)
	}
}

func TestGetInvestorStats_BadParam(t *testing.T) {
	h := NewStatsHandler(stats.NewUsecase(&investormock.Repo{}, &ordermock.Repo{}, nil, 0))

	c, rec := getStatsCtx(t, "not-an-id")
	if err := h.GetInvestorStats(c); err != nil {
		t.Fatalf("GetInvestorStats error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetInvestorStats_NotFound(t *testing.T) {
	investors := &investormock.Repo{
		GetByInvestorIDFn: func(ctx context.Context, investorID string) (*investordomain.Investor, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := NewStatsHandler(stats.NewUsecase(investors, &ordermock.Repo{}, nil, 0))

	c, rec := getStatsCtx(t, testInvestorID)
	if err := h.GetInvestorStats(c); err != nil {
		t.Fatalf("GetInvestorStats error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

// A storage outage is not "investor not found".
func TestGetInvestorStats_StorageErrorIs500(t *testing.T) {
	investors := &investormock.Repo{
		GetByInvestorIDFn: func(ctx context.Context, investorID string) (*investordomain.Investor, error) {
			return nil, errors.New("driver: bad connection")
		},
	}
	h := NewStatsHandler(stats.NewUsecase(investors, &ordermock.Repo{}, nil, 0))

	c, rec := getStatsCtx(t, testInvestorID)
	if err := h.GetInvestorStats(c); err != nil {
		t.Fatalf("GetInvestorStats error: %v", err)
	}
	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "internal error" {
		t.Fatalf("error = %q, want %q", er.Error, "internal error")
	}
}
