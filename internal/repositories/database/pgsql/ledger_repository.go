package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgetwise/budget_tracker_app/internal/core/ports/repositories"
	"github.com/budgetwise/budget_tracker_app/internal/models"
	"github.com/budgetwise/budget_tracker_app/internal/utils/mapping"
	"github.com/budgetwise/budget_tracker_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for transaction and aggregate data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// SaveTransaction inserts the transaction row and applies both aggregate deltas
// within one DB transaction. The aggregate writes are single upsert statements:
// `income = month_history.income + EXCLUDED.income` is evaluated by the store
// under its row lock, so two concurrent increments to the same bucket are never
// lost. One of each delta pair (income/expense) is always zero, mirroring the
// unconditional dual increment of the aggregate contract.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, monthDelta domain.MonthHistory, yearDelta domain.YearHistory) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	modelTxn := mapping.ToModelTransaction(txn)
	txnQuery := `
		INSERT INTO transactions (transaction_id, user_id, amount, description, date, type, category, category_icon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, txnQuery,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.Date,
		modelTxn.Type,
		modelTxn.Category,
		modelTxn.CategoryIcon,
		modelTxn.CreatedAt,
		modelTxn.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}

	monthQuery := `
		INSERT INTO month_history (user_id, day, month, year, income, expense)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (day, month, year, user_id) DO UPDATE SET
			income = month_history.income + EXCLUDED.income,
			expense = month_history.expense + EXCLUDED.expense;
	`
	_, err = tx.Exec(ctx, monthQuery,
		monthDelta.UserID,
		monthDelta.Day,
		monthDelta.Month,
		monthDelta.Year,
		monthDelta.Income,
		monthDelta.Expense,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert month history for transaction "+modelTxn.TransactionID, err)
	}

	yearQuery := `
		INSERT INTO year_history (user_id, month, year, income, expense)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (month, year, user_id) DO UPDATE SET
			income = year_history.income + EXCLUDED.income,
			expense = year_history.expense + EXCLUDED.expense;
	`
	_, err = tx.Exec(ctx, yearQuery,
		yearDelta.UserID,
		yearDelta.Month,
		yearDelta.Year,
		yearDelta.Income,
		yearDelta.Expense,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert year history for transaction "+modelTxn.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction "+modelTxn.TransactionID, err)
	}

	return nil
}

// ListTransactions retrieves a paginated list of a user's transactions within a
// date range using token-based pagination. It returns the transactions, a token
// for the next page, and an error.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, userID string, from, to time.Time, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT transaction_id, user_id, amount, description, date, type, category, category_icon, created_at, updated_at
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`
	// Ordering must be stable; created_at breaks ties between same-date rows.
	orderByClause := `ORDER BY date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{userID, from, to}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		// Tuple comparison keeps the cursor condition a single clause
		cursorClause := `AND (date, created_at) < ($4, $5)`
		args = append(args, lastDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for user "+userID, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.TransactionID,
			&t.UserID,
			&t.Amount,
			&t.Description,
			&t.Date,
			&t.Type,
			&t.Category,
			&t.CategoryIcon,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row for user "+userID, err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows for user "+userID, err)
	}

	// Determine the next token
	var nextTokenVal *string
	results := transactions
	if len(transactions) > limit {
		lastTxn := transactions[limit-1] // The last item included in this page
		token := pagination.EncodeToken(lastTxn.Date, lastTxn.CreatedAt)
		nextTokenVal = &token
		results = transactions[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// GetBalanceStats sums income and expense amounts for a user over a date range.
func (r *PgxLedgerRepository) GetBalanceStats(ctx context.Context, userID string, from, to time.Time) (*domain.BalanceStats, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expense
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3;
	`

	var stats domain.BalanceStats
	if err := r.Pool.QueryRow(ctx, query, userID, from, to).Scan(&stats.Income, &stats.Expense); err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balance stats for user "+userID, err)
	}

	return &stats, nil
}

// GetCategoryStats sums amounts grouped by (type, category, icon) for a user
// over a date range, largest sums first.
func (r *PgxLedgerRepository) GetCategoryStats(ctx context.Context, userID string, from, to time.Time) ([]domain.CategoryStats, error) {
	query := `
		SELECT type, category, category_icon, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY type, category, category_icon
		ORDER BY total DESC;
	`

	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query category stats for user "+userID, err)
	}
	defer rows.Close()

	stats := []domain.CategoryStats{}
	for rows.Next() {
		var s domain.CategoryStats
		var txnType string
		var total decimal.Decimal
		if err := rows.Scan(&txnType, &s.Category, &s.CategoryIcon, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category stats row for user "+userID, err)
		}
		s.Type = domain.TransactionType(txnType)
		s.Amount = total
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category stats rows for user "+userID, err)
	}

	return stats, nil
}
