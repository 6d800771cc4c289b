package services

import (
	"context"
	"fmt"
	"time"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgetwise/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgetwise/budget_tracker_app/internal/core/ports/services"
)

// historyService reads the running aggregates maintained by the ledger.
type historyService struct {
	BaseService
	historyRepo portsrepo.HistoryRepositoryFacade
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(historyRepo portsrepo.HistoryRepositoryFacade) portssvc.HistorySvcFacade {
	return &historyService{
		historyRepo: historyRepo,
	}
}

var _ portssvc.HistorySvcFacade = (*historyService)(nil)

// ListPeriods returns the distinct years the user has data for. A user with no
// history yet gets the current year so the caller always has a period.
func (s *historyService) ListPeriods(ctx context.Context, userID string) ([]int, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	years, err := s.historyRepo.ListHistoryYears(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(years) == 0 {
		s.LogDebug(ctx, "No history rows yet, defaulting period to current year")
		years = []int{time.Now().UTC().Year()}
	}
	return years, nil
}

// GetMonthHistory returns the per-day aggregate rows for one month.
func (s *historyService) GetMonthHistory(ctx context.Context, userID string, month, year int) ([]domain.MonthHistory, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if month < 0 || month > 11 {
		return nil, fmt.Errorf("%w: month must be between 0 and 11", apperrors.ErrValidation)
	}
	return s.historyRepo.FindMonthHistory(ctx, userID, month, year)
}

// GetYearHistory returns the per-month aggregate rows for one year.
func (s *historyService) GetYearHistory(ctx context.Context, userID string, year int) ([]domain.YearHistory, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.historyRepo.FindYearHistory(ctx, userID, year)
}
