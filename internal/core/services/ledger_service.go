package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgetwise/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgetwise/budget_tracker_app/internal/core/ports/services"
	"github.com/budgetwise/budget_tracker_app/internal/dto"
	"github.com/budgetwise/budget_tracker_app/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	// ErrCategoryNotFound is returned when a transaction references a category
	// the user does not have. Categories are never auto-created here.
	ErrCategoryNotFound = errors.New("category not found")
)

// ledgerService records transactions and keeps the running aggregates in step.
// It holds no state of its own; mutual exclusion between concurrent recordings
// is delegated entirely to the store's transaction isolation.
type ledgerService struct {
	ledgerRepo   portsrepo.LedgerRepositoryWithTx
	categoryRepo portsrepo.CategoryReader
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryWithTx, categoryRepo portsrepo.CategoryReader) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:   ledgerRepo,
		categoryRepo: categoryRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// validateIntent checks the request fields before any store access, naming the
// offending field in the error.
func (s *ledgerService) validateIntent(req dto.CreateTransactionRequest) error {
	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !domain.TransactionType(req.Type).Valid() {
		return fmt.Errorf("%w: type must be either income or expense", apperrors.ErrValidation)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	if req.Category == "" {
		return fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	return nil
}

// RecordTransaction validates the intent, resolves the category, then persists
// the transaction row together with both aggregate increments as one atomic
// unit of work. On any failure nothing is committed. Retrying a failed call is
// NOT idempotent: each call generates a fresh transaction ID, so resubmission
// after an ambiguous failure records a second transaction and re-applies the
// aggregate increments.
func (s *ledgerService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// A missing user identity is a hard precondition failure; no default user
	// is ever substituted.
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	if err := s.validateIntent(req); err != nil {
		return nil, err
	}

	// Category lookup is by (name, user) only; the type is deliberately not
	// part of the filter, so a same-named category of the other type resolves
	// too and supplies the icon snapshot.
	categoryRow, err := s.categoryRepo.FindCategoryByName(ctx, userID, req.Category)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, req.Category)
		}
		logger.Error("Failed to look up category", slog.String("error", err.Error()), slog.String("category", req.Category))
		return nil, fmt.Errorf("failed to look up category %q: %w", req.Category, err)
	}

	now := time.Now().UTC()
	txnType := domain.TransactionType(req.Type)
	bucket := domain.BucketFor(req.Date)

	// Both increments are carried unconditionally; the one for the other type
	// is zero. The repository applies them in a single statement per table.
	income := decimal.Zero
	expense := decimal.Zero
	if txnType == domain.Income {
		income = req.Amount
	} else {
		expense = req.Amount
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		Type:          txnType,
		Category:      categoryRow.Name,
		CategoryIcon:  categoryRow.Icon,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	monthDelta := domain.MonthHistory{
		UserID:  userID,
		Day:     bucket.Day,
		Month:   bucket.Month,
		Year:    bucket.Year,
		Income:  income,
		Expense: expense,
	}

	yearDelta := domain.YearHistory{
		UserID:  userID,
		Month:   bucket.Month,
		Year:    bucket.Year,
		Income:  income,
		Expense: expense,
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, txn, monthDelta, yearDelta); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txnType)),
		slog.String("category", categoryRow.Name),
	)
	return &txn, nil
}

// ListTransactions retrieves a user's transactions within a date range.
func (s *ledgerService) ListTransactions(ctx context.Context, userID string, from, to time.Time, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if to.Before(from) {
		return nil, nil, fmt.Errorf("%w: to must not be before from", apperrors.ErrValidation)
	}
	return s.ledgerRepo.ListTransactions(ctx, userID, from, to, limit, nextToken)
}

// GetBalanceStats returns total income and expense over a date range.
func (s *ledgerService) GetBalanceStats(ctx context.Context, userID string, from, to time.Time) (*domain.BalanceStats, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to must not be before from", apperrors.ErrValidation)
	}
	return s.ledgerRepo.GetBalanceStats(ctx, userID, from, to)
}

// GetCategoryStats returns per-category sums over a date range.
func (s *ledgerService) GetCategoryStats(ctx context.Context, userID string, from, to time.Time) ([]domain.CategoryStats, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to must not be before from", apperrors.ErrValidation)
	}
	return s.ledgerRepo.GetCategoryStats(ctx, userID, from, to)
}
