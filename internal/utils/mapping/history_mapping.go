package mapping

import (
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	"github.com/budgetwise/budget_tracker_app/internal/models"
)

// ToDomainMonthHistory converts a model MonthHistory to a domain MonthHistory.
func ToDomainMonthHistory(m models.MonthHistory) domain.MonthHistory {
	return domain.MonthHistory{
		UserID:  m.UserID,
		Day:     m.Day,
		Month:   m.Month,
		Year:    m.Year,
		Income:  m.Income,
		Expense: m.Expense,
	}
}

// ToDomainMonthHistorySlice converts a slice of model MonthHistory rows.
func ToDomainMonthHistorySlice(ms []models.MonthHistory) []domain.MonthHistory {
	ds := make([]domain.MonthHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMonthHistory(m)
	}
	return ds
}

// ToDomainYearHistory converts a model YearHistory to a domain YearHistory.
func ToDomainYearHistory(m models.YearHistory) domain.YearHistory {
	return domain.YearHistory{
		UserID:  m.UserID,
		Month:   m.Month,
		Year:    m.Year,
		Income:  m.Income,
		Expense: m.Expense,
	}
}

// ToDomainYearHistorySlice converts a slice of model YearHistory rows.
func ToDomainYearHistorySlice(ms []models.YearHistory) []domain.YearHistory {
	ds := make([]domain.YearHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainYearHistory(m)
	}
	return ds
}
