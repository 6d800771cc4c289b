package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is the storage model for a recorded financial event.
// Category name and icon are denormalized snapshot columns with no FK to the
// categories table; deleting a category leaves recorded rows untouched.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Date          time.Time       `db:"date"`
	Type          TransactionType `db:"type"`
	Category      string          `db:"category"`
	CategoryIcon  string          `db:"category_icon"`
	AuditFields
}
