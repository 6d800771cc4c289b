package dto

import (
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// HistoryDataRow is one bucket of aggregate data returned to the dashboard.
// Day is present only for the month timeframe.
type HistoryDataRow struct {
	Day     *int            `json:"day,omitempty"`
	Month   int             `json:"month"`
	Year    int             `json:"year"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ToMonthHistoryRows converts per-day aggregate rows to response DTOs.
func ToMonthHistoryRows(rows []domain.MonthHistory) []HistoryDataRow {
	res := make([]HistoryDataRow, len(rows))
	for i, r := range rows {
		day := r.Day
		res[i] = HistoryDataRow{
			Day:     &day,
			Month:   r.Month,
			Year:    r.Year,
			Income:  r.Income,
			Expense: r.Expense,
		}
	}
	return res
}

// ToYearHistoryRows converts per-month aggregate rows to response DTOs.
func ToYearHistoryRows(rows []domain.YearHistory) []HistoryDataRow {
	res := make([]HistoryDataRow, len(rows))
	for i, r := range rows {
		res[i] = HistoryDataRow{
			Month:   r.Month,
			Year:    r.Year,
			Income:  r.Income,
			Expense: r.Expense,
		}
	}
	return res
}

// HistoryDataParams defines the query parameters for the aggregate data
// endpoint. Month is the 0-based calendar index and only read for the month
// timeframe.
type HistoryDataParams struct {
	Timeframe string `form:"timeframe" binding:"required,oneof=month year"`
	Month     int    `form:"month"`
	Year      int    `form:"year" binding:"required"`
}
