package mapping

import (
	"github.com/budgetwise/budget_tracker_app/internal/core/domain"
	"github.com/budgetwise/budget_tracker_app/internal/models"
)

// ToModelUserSettings converts domain UserSettings to the storage model.
func ToModelUserSettings(d domain.UserSettings) models.UserSettings {
	return models.UserSettings{
		UserID:   d.UserID,
		Currency: d.Currency,
	}
}

// ToDomainUserSettings converts model UserSettings to the domain type.
func ToDomainUserSettings(m models.UserSettings) domain.UserSettings {
	return domain.UserSettings{
		UserID:   m.UserID,
		Currency: m.Currency,
	}
}
