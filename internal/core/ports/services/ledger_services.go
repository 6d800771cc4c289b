package services

import (
	"context"
	"time"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	"github.com/budgetwise/budget_tracker_app/internal/dto"
)

// LedgerWriterSvc defines the transaction-ingestion operation.
type LedgerWriterSvc interface {
	// RecordTransaction validates the intent, resolves the category, and
	// atomically persists the transaction together with both aggregate
	// increments. Not idempotent: retrying after an ambiguous failure records
	// a second transaction and re-applies the increments.
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
}

// LedgerReaderSvc defines read operations over recorded transactions.
type LedgerReaderSvc interface {
	// ListTransactions retrieves a user's transactions within a date range,
	// newest first, with token-based pagination.
	ListTransactions(ctx context.Context, userID string, from, to time.Time, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// GetBalanceStats returns total income and expense over a date range.
	GetBalanceStats(ctx context.Context, userID string, from, to time.Time) (*domain.BalanceStats, error)

	// GetCategoryStats returns per-category sums over a date range.
	GetCategoryStats(ctx context.Context, userID string, from, to time.Time) ([]domain.CategoryStats, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
