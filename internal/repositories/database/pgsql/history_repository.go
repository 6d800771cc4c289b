package pgsql

import (
	"context"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgetwise/budget_tracker_app/internal/core/ports/repositories"
	"github.com/budgetwise/budget_tracker_app/internal/models"
	"github.com/budgetwise/budget_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// historyRepository reads the aggregate tables. All writes to these tables go
// through PgxLedgerRepository.SaveTransaction.
type historyRepository struct {
	BaseRepository
}

// newHistoryRepository creates a new repository over the aggregate tables.
func newHistoryRepository(pool *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &historyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.HistoryRepositoryFacade = (*historyRepository)(nil)

// ListHistoryYears retrieves the distinct years a user has data for, ascending.
func (r *historyRepository) ListHistoryYears(ctx context.Context, userID string) ([]int, error) {
	query := `
		SELECT DISTINCT year
		FROM month_history
		WHERE user_id = $1
		ORDER BY year ASC;
	`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query history years for user "+userID, err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan history year row for user "+userID, err)
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating history year rows for user "+userID, err)
	}

	return years, nil
}

// FindMonthHistory retrieves the per-day rows for one (month, year), ordered by
// day. Only days with recorded transactions have rows; absent days are not
// zero-filled here.
func (r *historyRepository) FindMonthHistory(ctx context.Context, userID string, month, year int) ([]domain.MonthHistory, error) {
	query := `
		SELECT user_id, day, month, year, income, expense
		FROM month_history
		WHERE user_id = $1 AND month = $2 AND year = $3
		ORDER BY day ASC;
	`

	rows, err := r.Pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query month history for user "+userID, err)
	}
	defer rows.Close()

	histories := []models.MonthHistory{}
	for rows.Next() {
		var m models.MonthHistory
		if err := rows.Scan(&m.UserID, &m.Day, &m.Month, &m.Year, &m.Income, &m.Expense); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan month history row for user "+userID, err)
		}
		histories = append(histories, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating month history rows for user "+userID, err)
	}

	return mapping.ToDomainMonthHistorySlice(histories), nil
}

// FindYearHistory retrieves the per-month rows for one year, ordered by month.
func (r *historyRepository) FindYearHistory(ctx context.Context, userID string, year int) ([]domain.YearHistory, error) {
	query := `
		SELECT user_id, month, year, income, expense
		FROM year_history
		WHERE user_id = $1 AND year = $2
		ORDER BY month ASC;
	`

	rows, err := r.Pool.Query(ctx, query, userID, year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query year history for user "+userID, err)
	}
	defer rows.Close()

	histories := []models.YearHistory{}
	for rows.Next() {
		var m models.YearHistory
		if err := rows.Scan(&m.UserID, &m.Month, &m.Year, &m.Income, &m.Expense); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan year history row for user "+userID, err)
		}
		histories = append(histories, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating year history rows for user "+userID, err)
	}

	return mapping.ToDomainYearHistorySlice(histories), nil
}
