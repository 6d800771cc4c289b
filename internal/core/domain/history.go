package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryBucket identifies one running-total row by its calendar components,
// derived from the transaction date in UTC. Month is the 0-based calendar
// month index (January = 0), matching the stored aggregate keys.
type HistoryBucket struct {
	Day   int
	Month int
	Year  int
}

// BucketFor derives the aggregate bucket for a transaction date in UTC.
func BucketFor(date time.Time) HistoryBucket {
	utc := date.UTC()
	return HistoryBucket{
		Day:   utc.Day(),
		Month: int(utc.Month()) - 1,
		Year:  utc.Year(),
	}
}

// MonthHistory is a per-user per-calendar-day running aggregate.
// Unique per (Day, Month, Year, UserID). Income and Expense only ever grow:
// there is no transaction edit or delete path that would decrement them.
type MonthHistory struct {
	UserID  string          `json:"userID"`
	Day     int             `json:"day"`
	Month   int             `json:"month"` // 0-based month index
	Year    int             `json:"year"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// YearHistory is a per-user per-calendar-month running aggregate.
// Unique per (Month, Year, UserID); same monotonic growth as MonthHistory.
type YearHistory struct {
	UserID  string          `json:"userID"`
	Month   int             `json:"month"` // 0-based month index
	Year    int             `json:"year"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
