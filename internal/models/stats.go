package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthStat is the aggregate for a single month of a yearly report.
type MonthStat struct {
	Month   int             `json:"month"`   // 1-12
	Spent   decimal.Decimal `json:"spent"`   // Sum of all expenses in the month
	Budget  decimal.Decimal `json:"budget"`  // Sum of all budget limits for the month
	Over    decimal.Decimal `json:"over"`    // Amount spent above the budget, floored at zero
	Percent int64           `json:"percent"` // Spent as a percentage of the budget, 0 when there is no budget
}

// StatsTotals sums the per-month values across the year.
type StatsTotals struct {
	Spent  decimal.Decimal `json:"spent"`
	Budget decimal.Decimal `json:"budget"`
	Over   decimal.Decimal `json:"over"`
}

// YearlyStats is the spending report for one year. Months always has
// exactly twelve entries, ordered January to December, regardless of
// how sparse the underlying data is.
type YearlyStats struct {
	Year   int           `json:"year"`
	Months [12]MonthStat `json:"months"`
	Totals StatsTotals   `json:"totals"`
}

// monthSum is a row of the grouped sum queries.
type monthSum struct {
	Month int
	Total decimal.Decimal
}

// ComputeYearlyStats builds the yearly report for one owner.
//
// Expenses and budgets are summed per month in two independent grouped
// queries and then merged into a dense twelve month list. Months absent
// from either query contribute zero.
//
// Totals.Over sums the per-month overages, which are already floored at
// zero. A month that stayed under budget must never offset a month that
// went over, so this is NOT the same as flooring the difference of the
// yearly sums.
//
// If either query fails the whole report fails. A report built from
// only one of the two aggregates would misrepresent the overage.
func ComputeYearlyStats(db *gorm.DB, ownerID uuid.UUID, year int) (YearlyStats, error) {
	var spent []monthSum
	err := db.Model(&Expense{}).
		Select("month, SUM(amount) AS total").
		Where("owner_id = ? AND year = ?", ownerID, year).
		Group("month").
		Scan(&spent).Error
	if err != nil {
		return YearlyStats{}, err
	}

	var budgeted []monthSum
	err = db.Model(&Budget{}).
		Select("month, SUM(`limit`) AS total").
		Where("owner_id = ? AND year = ?", ownerID, year).
		Group("month").
		Scan(&budgeted).Error
	if err != nil {
		return YearlyStats{}, err
	}

	stats := YearlyStats{Year: year}
	for i := range stats.Months {
		stats.Months[i] = MonthStat{
			Month:  i + 1,
			Spent:  decimal.Zero,
			Budget: decimal.Zero,
			Over:   decimal.Zero,
		}
	}

	for _, row := range spent {
		if row.Month >= 1 && row.Month <= 12 {
			stats.Months[row.Month-1].Spent = row.Total
		}
	}

	for _, row := range budgeted {
		if row.Month >= 1 && row.Month <= 12 {
			stats.Months[row.Month-1].Budget = row.Total
		}
	}

	stats.Totals = StatsTotals{
		Spent:  decimal.Zero,
		Budget: decimal.Zero,
		Over:   decimal.Zero,
	}

	for i := range stats.Months {
		m := &stats.Months[i]

		if m.Spent.GreaterThan(m.Budget) {
			m.Over = m.Spent.Sub(m.Budget)
		}

		// A month with spending but no budget reports 0%, not an
		// undefined ratio.
		if m.Budget.IsPositive() {
			m.Percent = m.Spent.Div(m.Budget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		}

		stats.Totals.Spent = stats.Totals.Spent.Add(m.Spent)
		stats.Totals.Budget = stats.Totals.Budget.Add(m.Budget)
		stats.Totals.Over = stats.Totals.Over.Add(m.Over)
	}

	return stats, nil
}
