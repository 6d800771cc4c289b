package services

import (
	"context"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
)

// SettingsSvcFacade defines operations over per-user settings.
type SettingsSvcFacade interface {
	// GetUserSettings retrieves the user's settings, provisioning a row with
	// the default currency on first access.
	GetUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error)

	// UpdateUserCurrency sets the user's preferred currency after validating
	// the code against the supported currency list.
	UpdateUserCurrency(ctx context.Context, userID, currencyCode string) (*domain.UserSettings, error)
}
