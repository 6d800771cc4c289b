package dto

import (
	"time"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=3,max=20"`
	Icon string `json:"icon" binding:"required,max=20"`
	Type string `json:"type" binding:"required,oneof=income expense"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to a CategoryResponse DTO
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		Name:      cat.Name,
		Icon:      cat.Icon,
		Type:      string(cat.Type),
		CreatedAt: cat.CreatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain Categories to response DTOs
func ToListCategoryResponse(cats []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cats))
	for i := range cats {
		res[i] = ToCategoryResponse(&cats[i])
	}
	return res
}

// ListCategoriesParams defines the optional type filter for listing categories.
type ListCategoriesParams struct {
	Type *string `form:"type" binding:"omitempty,oneof=income expense"`
}

// DeleteCategoryParams identifies the category to remove by its natural key.
type DeleteCategoryParams struct {
	Name string `form:"name" binding:"required"`
	Type string `form:"type" binding:"required,oneof=income expense"`
}
