package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a monthly spending limit for one category.
//
// At most one budget may exist per (owner, category, month, year). This
// is enforced with an existence check at creation time, not a storage
// level constraint: the check surfaces the existing record's ID so the
// client can offer an update instead.
type Budget struct {
	DefaultModel
	CategoryID uuid.UUID       `json:"categoryId"`
	Category   Category        `json:"category"`
	Limit      decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)"`
	Month      int             `json:"month" gorm:"check:budget_month_valid,month >= 1 AND month <= 12"`
	Year       int             `json:"year"`
	OwnerID    uuid.UUID       `json:"-"`
}

// CheckBudgetUnique returns ErrBudgetExists with the conflicting
// record's ID when a budget for the tuple already exists.
func CheckBudgetUnique(db *gorm.DB, ownerID, categoryID uuid.UUID, month, year int) error {
	var existing Budget
	err := db.
		Where("owner_id = ? AND category_id = ? AND month = ? AND year = ?", ownerID, categoryID, month, year).
		First(&existing).Error

	if err == nil {
		return ErrBudgetExists{BudgetID: existing.ID}
	}

	if errors.Is(err, ErrResourceNotFound) {
		return nil
	}

	return err
}
