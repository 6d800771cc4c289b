package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgetwise/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgetwise/budget_tracker_app/internal/core/ports/services"
	"github.com/budgetwise/budget_tracker_app/internal/dto"
	"github.com/budgetwise/budget_tracker_app/internal/middleware"
)

// categoryService manages user-defined transaction categories.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory persists a new category for the user.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	txnType := domain.TransactionType(req.Type)
	if !txnType.Valid() {
		return nil, fmt.Errorf("%w: type must be either income or expense", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	category := domain.Category{
		Name:   req.Name,
		UserID: userID,
		Icon:   req.Icon,
		Type:   txnType,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save category", slog.String("error", err.Error()), slog.String("category", req.Name))
		}
		return nil, err
	}

	logger.Info("Category created", slog.String("category", category.Name), slog.String("type", string(category.Type)))
	return &category, nil
}

// ListCategories retrieves a user's categories, optionally filtered by type.
func (s *categoryService) ListCategories(ctx context.Context, userID string, txnType *domain.TransactionType) ([]domain.Category, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if txnType != nil && !txnType.Valid() {
		return nil, fmt.Errorf("%w: type must be either income or expense", apperrors.ErrValidation)
	}
	return s.categoryRepo.ListCategories(ctx, userID, txnType)
}

// DeleteCategory removes a category by (name, type). Transactions already
// recorded against the category keep their denormalized name and icon.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, name string, txnType domain.TransactionType) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == "" {
		return apperrors.ErrUnauthenticated
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if !txnType.Valid() {
		return fmt.Errorf("%w: type must be either income or expense", apperrors.ErrValidation)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, userID, name, txnType); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete category", slog.String("error", err.Error()), slog.String("category", name))
		}
		return err
	}

	logger.Info("Category deleted", slog.String("category", name), slog.String("type", string(txnType)))
	return nil
}
