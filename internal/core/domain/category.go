package domain

// Category is a named, user-scoped grouping for transactions.
// The triple (Name, UserID, Type) is unique: a user may have at most one
// category with a given name per transaction type.
type Category struct {
	Name   string          `json:"name"`
	UserID string          `json:"userID"`
	Icon   string          `json:"icon"` // Emoji/glyph shown next to the category
	Type   TransactionType `json:"type"`
	AuditFields
}
