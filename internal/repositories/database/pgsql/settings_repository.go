package pgsql

import (
	"context"
	"errors"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgetwise/budget_tracker_app/internal/core/ports/repositories"
	"github.com/budgetwise/budget_tracker_app/internal/models"
	"github.com/budgetwise/budget_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for user settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// FindUserSettings retrieves the settings row for a user.
func (r *PgxSettingsRepository) FindUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
		SELECT user_id, currency
		FROM user_settings
		WHERE user_id = $1;
	`

	var m models.UserSettings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&m.UserID, &m.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find settings for user "+userID, err)
	}

	settings := mapping.ToDomainUserSettings(m)
	return &settings, nil
}

// UpsertUserSettings creates or replaces the settings row for a user.
func (r *PgxSettingsRepository) UpsertUserSettings(ctx context.Context, settings domain.UserSettings) error {
	m := mapping.ToModelUserSettings(settings)

	query := `
		INSERT INTO user_settings (user_id, currency)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			currency = EXCLUDED.currency;
	`

	if _, err := r.Pool.Exec(ctx, query, m.UserID, m.Currency); err != nil {
		return apperrors.NewAppError(500, "failed to upsert settings for user "+m.UserID, err)
	}

	return nil
}
