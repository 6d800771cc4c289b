package models

// Category is the storage model for a user-defined transaction grouping.
// Uniqueness is enforced by the (name, user_id, type) constraint.
type Category struct {
	Name   string          `db:"name"`
	UserID string          `db:"user_id"`
	Icon   string          `db:"icon"`
	Type   TransactionType `db:"type"`
	AuditFields
}
