package services

import (
	portsrepo "github.com/budgetwise/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgetwise/budget_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.CategoryRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.History = NewHistoryService(repos.HistoryRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo, repos.CurrencyRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.CategorySvcFacade = (*categoryService)(nil)
	_ portssvc.HistorySvcFacade  = (*historyService)(nil)
	_ portssvc.SettingsSvcFacade = (*settingsService)(nil)
	_ portssvc.CurrencySvcFacade = (*currencyService)(nil)
)
