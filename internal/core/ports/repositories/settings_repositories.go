package repositories

import (
	"context"

	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
)

// SettingsReader defines read operations for user settings
type SettingsReader interface {
	// FindUserSettings retrieves the settings row for a user.
	FindUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error)
}

// SettingsWriter defines write operations for user settings
type SettingsWriter interface {
	// UpsertUserSettings creates or replaces the settings row for a user.
	UpsertUserSettings(ctx context.Context, settings domain.UserSettings) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
