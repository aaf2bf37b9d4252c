package investor

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

var (
	ErrNotFound = errors.New("investor not found")
	// ErrNoCapacity: a guarded credit was refused because the investor is no
	// longer active or the increment would push earned_profit past the target.
	ErrNoCapacity = errors.New("investor has no remaining profit capacity")
)

type Investor struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	InvestorID string `gorm:"size:32;uniqueIndex:ux_investors_investor_id_active" json:"investor_id"`
	// OwnerID is the store owner this investor is attached to.
	OwnerID          string         `gorm:"size:32;index:idx_investors_owner_active" json:"owner_id"`
	Name             string         `gorm:"size:128" json:"name"`
	Status           Status         `gorm:"type:enum('active','completed');default:'active'" json:"status"`
	ProfitPercentage float64        `gorm:"type:decimal(6,2)" json:"profit_percentage"`
	ProfitAmount     float64        `gorm:"type:decimal(18,2)" json:"profit_amount"` // cumulative target; 0 = unlimited
	EarnedProfit     float64        `gorm:"type:decimal(18,2)" json:"earned_profit"`
	InvestmentAmount float64        `gorm:"type:decimal(18,2)" json:"investment_amount"`
	TotalReturn      float64        `gorm:"type:decimal(18,2)" json:"total_return"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Investor) TableName() string { return "investors" }

// HasTarget reports whether a cumulative profit ceiling applies.
func (i *Investor) HasTarget() bool { return i.ProfitAmount > 0 }
