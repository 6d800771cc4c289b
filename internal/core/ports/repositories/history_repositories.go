package repositories

import (
	"context"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
)

// HistoryReader defines read operations over the aggregate tables.
// The aggregates are written exclusively through LedgerWriter.
type HistoryReader interface {
	// ListHistoryYears retrieves the distinct years a user has data for,
	// ascending.
	ListHistoryYears(ctx context.Context, userID string) ([]int, error)

	// FindMonthHistory retrieves the per-day rows for one (month, year),
	// ordered by day. Month is the 0-based index.
	FindMonthHistory(ctx context.Context, userID string, month, year int) ([]domain.MonthHistory, error)

	// FindYearHistory retrieves the per-month rows for one year, ordered by
	// month.
	FindYearHistory(ctx context.Context, userID string, year int) ([]domain.YearHistory, error)
}

// HistoryRepositoryFacade is the facade for history reads.
type HistoryRepositoryFacade interface {
	HistoryReader
}
