package models

import "github.com/shopspring/decimal"

// MonthHistory is the storage model for the per-day running aggregate.
// Primary key: (day, month, year, user_id). Month is the 0-based index.
type MonthHistory struct {
	UserID  string          `db:"user_id"`
	Day     int             `db:"day"`
	Month   int             `db:"month"`
	Year    int             `db:"year"`
	Income  decimal.Decimal `db:"income"`
	Expense decimal.Decimal `db:"expense"`
}

// YearHistory is the storage model for the per-month running aggregate.
// Primary key: (month, year, user_id).
type YearHistory struct {
	UserID  string          `db:"user_id"`
	Month   int             `db:"month"`
	Year    int             `db:"year"`
	Income  decimal.Decimal `db:"income"`
	Expense decimal.Decimal `db:"expense"`
}
