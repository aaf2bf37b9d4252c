package reference

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("reference not found")

// Reference is a referral partner owed a percentage commission on every
// profit an owner's investors are credited with. total_profit is the
// commission ever earned, pending_amount the part still awaiting payout.
type Reference struct {
	ID            uint64         `gorm:"primaryKey;column:id" json:"-"`
	ReferenceID   string         `gorm:"size:32;uniqueIndex:ux_references_reference_id_active" json:"reference_id"`
	OwnerID       string         `gorm:"size:32;index:idx_references_owner_active" json:"owner_id"`
	Name          string         `gorm:"size:128" json:"name"`
	ProfitRate    float64        `gorm:"type:decimal(6,2)" json:"profit_rate"`
	TotalProfit   float64        `gorm:"type:decimal(18,2)" json:"total_profit"`
	PendingAmount float64        `gorm:"type:decimal(18,2)" json:"pending_amount"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// REFERENCES is a reserved word in MySQL, hence the longer table name.
func (Reference) TableName() string { return "reference_partners" }
