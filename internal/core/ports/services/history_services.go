package services

import (
	"context"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
)

// HistorySvcFacade defines read operations over the running aggregates.
type HistorySvcFacade interface {
	// ListPeriods returns the distinct years the user has data for, ascending.
	// A user with no history gets the current year so the UI always has a
	// period to select.
	ListPeriods(ctx context.Context, userID string) ([]int, error)

	// GetMonthHistory returns the per-day aggregate rows for one month.
	// Month is the 0-based calendar index.
	GetMonthHistory(ctx context.Context, userID string, month, year int) ([]domain.MonthHistory, error)

	// GetYearHistory returns the per-month aggregate rows for one year.
	GetYearHistory(ctx context.Context, userID string, year int) ([]domain.YearHistory, error)
}
