package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single spending record.
//
// Month and Year are stored redundantly for the grouped statistics
// queries, but they are never accepted from clients: BeforeSave derives
// them from Date on every write, so they cannot diverge.
type Expense struct {
	DefaultModel
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Month       int             `json:"month"` // 1-12, derived from Date
	Year        int             `json:"year"`  // derived from Date
	OwnerID     uuid.UUID       `json:"-"`
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - derives Month and Year from Date
//   - trims whitespace from string fields
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Description = strings.TrimSpace(e.Description)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	e.Month = int(e.Date.Month())
	e.Year = e.Date.Year()

	return nil
}

// AfterFind enforces dates to be in UTC, like the timestamps.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return
}
