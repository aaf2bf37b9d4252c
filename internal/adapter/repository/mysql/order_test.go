package mysql

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domain "profitshare-backend/internal/domain/order"
	"profitshare-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type orderSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	OrderID            string         `gorm:"size:32;column:order_id"`
	OwnerID            string         `gorm:"size:32;column:owner_id"`
	Total              float64        `gorm:"column:total"`
	Status             string         `gorm:"type:text;column:status"` // ← no enum
	IPInvestorID       string         `gorm:"column:ip_investor_id"`
	IPInvestorName     string         `gorm:"column:ip_investor_name"`
	IPProfitPercentage float64        `gorm:"column:ip_profit_percentage"`
	IPProfitAmount     float64        `gorm:"column:ip_profit_amount"`
	IPIsPending        bool           `gorm:"column:ip_is_pending"`
	IPAssignedAt       time.Time      `gorm:"column:ip_assigned_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (orderSQLite) TableName() string { return "orders" }

func openOrderTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&orderSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeOrder(ownerID string, total float64, status domain.Status) *domain.Order {
	return &domain.Order{
		OrderID: id.NewID32(),
		OwnerID: ownerID,
		Total:   total,
		Status:  status,
	}
}

func TestOrder_AssignmentRoundtrip(t *testing.T) {
	db := openOrderTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	assigned := time.Now().UTC().Truncate(time.Second)
	o := makeOrder("owner-1", 1000, domain.StatusCreated)
	o.InvestorProfit = &domain.Assignment{
		InvestorID:       "1111111111111111111111111111aaaa",
		InvestorName:     "Ayu",
		ProfitPercentage: 10,
		ProfitAmount:     5.00,
		IsPending:        true,
		AssignedAt:       assigned,
	}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByOrderID(ctx, o.OrderID)
	if err != nil {
		t.Fatalf("GetByOrderID: %v", err)
	}
	if !got.HasAssignment() {
		t.Fatal("assignment lost in roundtrip")
	}
	ip := got.InvestorProfit
	if ip.InvestorName != "Ayu" || ip.ProfitAmount != 5.00 || !ip.IsPending {
		t.Errorf("assignment = %+v", ip)
	}
	if !ip.AssignedAt.Equal(assigned) {
		t.Errorf("assignedAt = %v, want %v", ip.AssignedAt, assigned)
	}
}

func TestOrder_NoAssignmentReadsBackEmpty(t *testing.T) {
	db := openOrderTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := makeOrder("owner-1", 1000, domain.StatusCreated)
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByOrderID(ctx, o.OrderID)
	if err != nil {
		t.Fatalf("GetByOrderID: %v", err)
	}
	if got.HasAssignment() {
		t.Fatalf("unexpected assignment: %+v", got.InvestorProfit)
	}
}

func TestOrder_FinalizeFlipPersists(t *testing.T) {
	db := openOrderTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := makeOrder("owner-1", 1000, domain.StatusDelivered)
	o.InvestorProfit = &domain.Assignment{
		InvestorID: "1111111111111111111111111111aaaa",
		IsPending:  true, ProfitAmount: 100, AssignedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create: %v", err)
	}

	o.InvestorProfit.IsPending = false
	o.InvestorProfit.ProfitAmount = 108.70
	if err := repo.Save(ctx, o); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, _ := repo.GetByOrderID(ctx, o.OrderID)
	if got.InvestorProfit.IsPending || got.InvestorProfit.ProfitAmount != 108.70 {
		t.Errorf("assignment = %+v", got.InvestorProfit)
	}
}

func TestOrder_GetByOrderID_NotFound(t *testing.T) {
	db := openOrderTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.GetByOrderID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestOrder_StatsByInvestor(t *testing.T) {
	db := openOrderTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	const invID = "1111111111111111111111111111aaaa"
	now := time.Now().UTC()

	seed := []struct {
		status  domain.Status
		pending bool
		amount  float64
	}{
		{domain.StatusDelivered, false, 40.00},
		{domain.StatusDelivered, false, 10.00},
		{domain.StatusCreated, true, 33.50},
	}
	for _, s := range seed {
		o := makeOrder("owner-1", 500, s.status)
		o.InvestorProfit = &domain.Assignment{
			InvestorID: invID, ProfitAmount: s.amount, IsPending: s.pending, AssignedAt: now,
		}
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	// another investor's order must not leak into the aggregates
	other := makeOrder("owner-1", 500, domain.StatusDelivered)
	other.InvestorProfit = &domain.Assignment{
		InvestorID: "2222222222222222222222222222bbbb", ProfitAmount: 99, IsPending: false, AssignedAt: now,
	}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	st, err := repo.StatsByInvestor(ctx, invID)
	if err != nil {
		t.Fatalf("StatsByInvestor: %v", err)
	}
	if st.TotalOrders != 3 || st.DeliveredOrders != 2 {
		t.Errorf("counts = %d/%d, want 3/2", st.TotalOrders, st.DeliveredOrders)
	}
	if !almostEq(st.TotalProfit, 50.00) {
		t.Errorf("total profit = %v, want 50.00", st.TotalProfit)
	}
	if !almostEq(st.PendingProfit, 33.50) {
		t.Errorf("pending profit = %v, want 33.50", st.PendingProfit)
	}
}

func TestOrder_ListRecentByInvestor(t *testing.T) {
	db := openOrderTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	const invID = "1111111111111111111111111111aaaa"
	base := time.Now().UTC().Add(-24 * time.Hour)
	for i := 0; i < 12; i++ {
		o := makeOrder("owner-1", 100, domain.StatusCreated)
		o.OrderID = fmt.Sprintf("%030dzz", i)
		o.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		o.InvestorProfit = &domain.Assignment{
			InvestorID: invID, ProfitAmount: 10, IsPending: true, AssignedAt: o.CreatedAt,
		}
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	got, err := repo.ListRecentByInvestor(ctx, invID, 10)
	if err != nil {
		t.Fatalf("ListRecentByInvestor: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[0].OrderID != fmt.Sprintf("%030dzz", 11) {
		t.Errorf("newest first violated: got %s", got[0].OrderID)
	}
	if got[9].OrderID != fmt.Sprintf("%030dzz", 2) {
		t.Errorf("window wrong: got %s", got[9].OrderID)
	}
}
