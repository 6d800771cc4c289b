package repositories

import (
	"context"
	"time"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
)

// LedgerWriter defines the atomic transaction-ingestion write.
type LedgerWriter interface {
	// SaveTransaction persists the transaction row and applies both aggregate
	// deltas as a single all-or-nothing unit of work. The delta rows carry the
	// bucket keys plus the income/expense increments (one of the two is always
	// zero); existing aggregate rows are incremented in place, absent rows are
	// created with the delta as their initial value.
	SaveTransaction(ctx context.Context, txn domain.Transaction, monthDelta domain.MonthHistory, yearDelta domain.YearHistory) error
}

// LedgerReader defines read operations over recorded transactions.
type LedgerReader interface {
	// ListTransactions retrieves a user's transactions with date in [from, to],
	// newest first, using token-based pagination.
	ListTransactions(ctx context.Context, userID string, from, to time.Time, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// GetBalanceStats sums income and expense amounts over [from, to].
	GetBalanceStats(ctx context.Context, userID string, from, to time.Time) (*domain.BalanceStats, error)

	// GetCategoryStats sums amounts grouped by (type, category, icon) over
	// [from, to], largest sums first.
	GetCategoryStats(ctx context.Context, userID string, from, to time.Time) ([]domain.CategoryStats, error)
}

// LedgerRepositoryFacade combines ledger read and write interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
