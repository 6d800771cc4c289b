package services

import (
	"context"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
)

// CurrencySvcFacade defines read operations over the supported currency list.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
