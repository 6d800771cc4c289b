package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/budgetwise/budget_tracker_app/internal/apperrors"
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/budgetwise/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/budgetwise/budget_tracker_app/internal/core/ports/services"
	"github.com/budgetwise/budget_tracker_app/internal/middleware"
)

// defaultCurrency is assigned when a user's settings row is first provisioned.
const defaultCurrency = "USD"

// settingsService manages per-user preferences.
type settingsService struct {
	settingsRepo portsrepo.SettingsRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo: settingsRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetUserSettings retrieves the user's settings, provisioning a row with the
// default currency on first access.
func (s *settingsService) GetUserSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	settings, err := s.settingsRepo.FindUserSettings(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to find user settings", slog.String("error", err.Error()))
		return nil, err
	}

	// First access: provision defaults.
	provisioned := domain.UserSettings{
		UserID:   userID,
		Currency: defaultCurrency,
	}
	if err := s.settingsRepo.UpsertUserSettings(ctx, provisioned); err != nil {
		logger.Error("Failed to provision default user settings", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Provisioned default settings", slog.String("currency", defaultCurrency))
	return &provisioned, nil
}

// UpdateUserCurrency sets the user's preferred currency after validating it
// against the supported currency list.
func (s *settingsService) UpdateUserCurrency(ctx context.Context, userID, currencyCode string) (*domain.UserSettings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, currencyCode)
		}
		logger.Error("Failed to validate currency", slog.String("error", err.Error()), slog.String("currency", currencyCode))
		return nil, err
	}

	settings := domain.UserSettings{
		UserID:   userID,
		Currency: currencyCode,
	}
	if err := s.settingsRepo.UpsertUserSettings(ctx, settings); err != nil {
		logger.Error("Failed to update user currency", slog.String("error", err.Error()), slog.String("currency", currencyCode))
		return nil, err
	}

	logger.Info("User currency updated", slog.String("currency", currencyCode))
	return &settings, nil
}
