package pgsql

import (
	portsrepo "github.com/budgetwise/budget_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	categoryRepo := newPgxCategoryRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	historyRepo := newHistoryRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CategoryRepo: categoryRepo,
		LedgerRepo:   ledgerRepo,
		HistoryRepo:  historyRepo,
		SettingsRepo: settingsRepo,
		CurrencyRepo: currencyRepo,
	}
}
