package dto

import (
	"time"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceStatsResponse holds total income, expense and their difference over a range.
type BalanceStatsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// ToBalanceStatsResponse converts domain balance stats to the response DTO.
func ToBalanceStatsResponse(stats *domain.BalanceStats) BalanceStatsResponse {
	return BalanceStatsResponse{
		Income:  stats.Income,
		Expense: stats.Expense,
		Balance: stats.Income.Sub(stats.Expense),
	}
}

// CategoryStatsResponse holds the summed amount for one (type, category) pair.
type CategoryStatsResponse struct {
	Type         string          `json:"type"`
	Category     string          `json:"category"`
	CategoryIcon string          `json:"categoryIcon"`
	Amount       decimal.Decimal `json:"amount"`
}

// ToListCategoryStatsResponse converts domain category stats to response DTOs.
func ToListCategoryStatsResponse(stats []domain.CategoryStats) []CategoryStatsResponse {
	res := make([]CategoryStatsResponse, len(stats))
	for i, s := range stats {
		res[i] = CategoryStatsResponse{
			Type:         string(s.Type),
			Category:     s.Category,
			CategoryIcon: s.CategoryIcon,
			Amount:       s.Amount,
		}
	}
	return res
}

// StatsRangeParams defines the date range query parameters shared by the
// stats endpoints. Dates use the YYYY-MM-DD form, inclusive on both ends.
type StatsRangeParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}
