package mysql

import (
	"context"
	"errors"

	rotationDomain "profitshare-backend/internal/domain/rotation"

	"gorm.io/gorm"
)

type CursorRepository struct{ db *gorm.DB }

func NewCursorRepository(db *gorm.DB) *CursorRepository { return &CursorRepository{db: db} }

// Advance performs the read-increment-modulo under one row lock. The cursor
// is created at -1 on first use so the opening pick lands on index 0.
func (r *CursorRepository) Advance(ctx context.Context, ownerID string, length int) (int, error) {
	if length <= 0 {
		return 0, rotationDomain.ErrEmptyRotation
	}
	var next int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur rotationDomain.Cursor
		err := lockForUpdate(tx).Where("owner_id = ?", ownerID).First(&cur).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			cur = rotationDomain.Cursor{OwnerID: ownerID, LastIndex: -1}
			if err := tx.Create(&cur).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}
		// modulo against the caller's current list length: the eligible pool
		// shrinks and grows between calls, a stale index just wraps
		next = (cur.LastIndex + 1) % length
		cur.LastIndex = next
		return tx.Save(&cur).Error
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *CursorRepository) Get(ctx context.Context, ownerID string) (*rotationDomain.Cursor, error) {
	var out rotationDomain.Cursor
	res := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&out)
	return &out, res.Error
}
