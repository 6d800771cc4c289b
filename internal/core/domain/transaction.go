package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money coming in or going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single immutable financial event recorded by a user.
// Category and CategoryIcon are denormalized from the category row at creation
// time; later edits to the category never rewrite historical transactions.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`
	Amount        decimal.Decimal `json:"amount"` // Non-negative; precise decimal type
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"` // When the transaction occurred (caller supplied)
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	CategoryIcon  string          `json:"categoryIcon"`
	AuditFields
}
