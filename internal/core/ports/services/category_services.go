package services

import (
	"context"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	"github.com/budgetwise/budget_tracker_app/internal/dto"
)

// CategoryReaderSvc defines read operations for categories
type CategoryReaderSvc interface {
	// ListCategories retrieves a user's categories ordered by name, optionally
	// filtered by transaction type.
	ListCategories(ctx context.Context, userID string, txnType *domain.TransactionType) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for categories
type CategoryWriterSvc interface {
	// CreateCategory persists a new category for the user.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error)

	// DeleteCategory removes a category by (name, type).
	DeleteCategory(ctx context.Context, userID, name string, txnType domain.TransactionType) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
