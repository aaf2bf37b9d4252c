package rotation

import (
	"errors"
	"time"
)

var ErrEmptyRotation = errors.New("rotation over an empty list")

// Cursor is the persisted fairness state of the round robin, one row per
// owner. last_index starts at -1 so the first pick lands on index 0.
type Cursor struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	OwnerID   string    `gorm:"size:32;uniqueIndex:ux_rotation_cursors_owner" json:"owner_id"`
	LastIndex int       `gorm:"default:-1" json:"last_index"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Cursor) TableName() string { return "rotation_cursors" }
