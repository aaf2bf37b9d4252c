package order

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusCreated   Status = "created"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrAlreadyFinalized: the order already carries a non-pending
	// assignment; finalize is a no-op.
	ErrAlreadyFinalized = errors.New("order assignment already finalized")
)

// Assignment is the investor-profit sub-structure written onto an order.
// Created pending at order creation, flipped to non-pending exactly once at
// delivery, never mutated again. Name and percentage are snapshots of the
// investor at assignment time.
type Assignment struct {
	InvestorID       string    `gorm:"size:32;column:investor_id" json:"investor_id"`
	InvestorName     string    `gorm:"size:128;column:investor_name" json:"investor_name"`
	ProfitPercentage float64   `gorm:"type:decimal(6,2);column:profit_percentage" json:"profit_percentage"`
	ProfitAmount     float64   `gorm:"type:decimal(18,2);column:profit_amount" json:"profit_amount"`
	IsPending        bool      `gorm:"column:is_pending" json:"is_pending"`
	AssignedAt       time.Time `gorm:"column:assigned_at" json:"assigned_at"`
}

type Order struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	OrderID string `gorm:"size:32;uniqueIndex:ux_orders_order_id_active" json:"order_id"`
	OwnerID string `gorm:"size:32;index:idx_orders_owner_active" json:"owner_id"`
	Total   float64 `gorm:"type:decimal(18,2)" json:"total"`
	Status  Status  `gorm:"type:enum('created','delivered','cancelled');default:'created'" json:"status"`
	// InvestorProfit is nil until a pre-assignment is made.
	InvestorProfit *Assignment    `gorm:"embedded;embeddedPrefix:ip_" json:"investor_profit,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Order) TableName() string { return "orders" }

// HasAssignment reports whether an investor-profit assignment exists.
// The embedded columns may scan back as a zero struct rather than nil, so
// presence is defined by a non-empty investor id.
func (o *Order) HasAssignment() bool {
	return o.InvestorProfit != nil && o.InvestorProfit.InvestorID != ""
}

// InvestorStats are the read-only aggregates served per investor.
type InvestorStats struct {
	TotalOrders     int64   `json:"total_orders"`
	DeliveredOrders int64   `json:"delivered_orders"`
	TotalProfit     float64 `json:"total_profit"`
	PendingProfit   float64 `json:"pending_profit"`
}
