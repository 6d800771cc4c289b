package dto

import "github.com/budgetwise/budget_tracker_app/internal/core/domain"

// UpdateUserCurrencyRequest defines the payload for changing the preferred currency.
type UpdateUserCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,uppercase,len=3"`
}

// UserSettingsResponse defines the data returned for user settings.
type UserSettingsResponse struct {
	UserID   string `json:"userID"`
	Currency string `json:"currency"`
}

// ToUserSettingsResponse converts domain settings to the response DTO.
func ToUserSettingsResponse(s *domain.UserSettings) UserSettingsResponse {
	return UserSettingsResponse{
		UserID:   s.UserID,
		Currency: s.Currency,
	}
}
