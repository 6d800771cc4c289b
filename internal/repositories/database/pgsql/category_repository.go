package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgetwise/budget_tracker_app/internal/core/ports/repositories"
	"github.com/budgetwise/budget_tracker_app/internal/models"
	"github.com/budgetwise/budget_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory persists a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (name, user_id, icon, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCat.Name,
		modelCat.UserID,
		modelCat.Icon,
		modelCat.Type,
		modelCat.CreatedAt,
		modelCat.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("%w: category %q of type %s already exists", apperrors.ErrDuplicate, modelCat.Name, modelCat.Type)
			}
		}
		return apperrors.NewAppError(500, "failed to insert category "+modelCat.Name, err)
	}

	return nil
}

// FindCategoryByName retrieves one category matching (name, userID).
// The lookup is by name and user only; when a same-named income and expense
// category both exist the row returned is whichever the store yields first.
func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, userID, name string) (*domain.Category, error) {
	query := `
		SELECT name, user_id, icon, type, created_at, updated_at
		FROM categories
		WHERE user_id = $1 AND name = $2
		LIMIT 1;
	`

	var m models.Category
	err := r.Pool.QueryRow(ctx, query, userID, name).Scan(
		&m.Name,
		&m.UserID,
		&m.Icon,
		&m.Type,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find category "+name, err)
	}

	domainCat := mapping.ToDomainCategory(m)
	return &domainCat, nil
}

// ListCategories retrieves a user's categories ordered by name, optionally
// filtered by transaction type.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string, txnType *domain.TransactionType) ([]domain.Category, error) {
	query := `
		SELECT name, user_id, icon, type, created_at, updated_at
		FROM categories
		WHERE user_id = $1
	`
	args := []interface{}{userID}
	if txnType != nil {
		query += ` AND type = $2`
		args = append(args, string(*txnType))
	}
	query += ` ORDER BY name ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories for user "+userID, err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(
			&m.Name,
			&m.UserID,
			&m.Icon,
			&m.Type,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row for user "+userID, err)
		}
		categories = append(categories, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows for user "+userID, err)
	}

	return mapping.ToDomainCategorySlice(categories), nil
}

// DeleteCategory removes a category by its natural key.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, userID, name string, txnType domain.TransactionType) error {
	query := `
		DELETE FROM categories
		WHERE user_id = $1 AND name = $2 AND type = $3;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, userID, name, string(txnType))
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete category "+name, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category " + name + " not found for delete")
	}

	return nil
}
