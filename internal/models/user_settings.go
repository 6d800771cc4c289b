package models

// UserSettings is the storage model for per-user preferences.
type UserSettings struct {
	UserID   string `db:"user_id"`
	Currency string `db:"currency"`
}
