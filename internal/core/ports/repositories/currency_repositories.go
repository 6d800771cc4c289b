package repositories

import (
	"context"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade is the facade for currency reads. The currency list
// is reference data seeded by migrations; there is no write path.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
