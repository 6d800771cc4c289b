package domain

// UserSettings holds per-user application preferences.
type UserSettings struct {
	UserID   string `json:"userID"`
	Currency string `json:"currency"` // Currency code, validated against the currencies table
}
