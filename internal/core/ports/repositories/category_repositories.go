package repositories

import (
	"context"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByName retrieves one category matching (name, userID).
	// The lookup deliberately does not filter on transaction type; when a user
	// owns a same-named income and expense category the store returns an
	// arbitrary match. See ListCategories for type-filtered reads.
	FindCategoryByName(ctx context.Context, userID, name string) (*domain.Category, error)

	// ListCategories retrieves a user's categories ordered by name, optionally
	// filtered by transaction type (nil means both types).
	ListCategories(ctx context.Context, userID string, txnType *domain.TransactionType) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category. Returns apperrors.ErrDuplicate when
	// the (name, userID, type) triple already exists.
	SaveCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category by its natural key. Returns
	// apperrors.ErrNotFound when no such category exists.
	DeleteCategory(ctx context.Context, userID, name string, txnType domain.TransactionType) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
